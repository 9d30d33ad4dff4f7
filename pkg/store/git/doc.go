// Package git wraps the git command line to inspect and commit changes
// in the target repositories promptsync writes to.
//
// It requires the git command in $PATH, since the pure Go git implementations
// aren't up to the task (see go-git issues #793 and #785 for instance).
package git
