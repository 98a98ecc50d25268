// Package git shells out to the git executable for the few lookups pulseci needs.
//
// Commands run with stdout and stderr captured. Failures come back as
// *output.ExitError with ExitSystemError, carrying git's stderr as the message:
//
//	git.IsRepo()            // inside a work tree?
//	git.RepoRoot()          // top-level directory of the current work tree
//	git.RepoRootFrom(dir)   // same, starting from dir
//	git.Run("status", "--short")
//	git.RunContext(ctx, dir, "init", "--quiet")
package git
