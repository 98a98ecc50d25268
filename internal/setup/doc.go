// Package setup installs and removes the pulseci git pre-commit hook.
//
// The hook runs 'pulseci check' before each commit and prints a warning when
// the workflow files differ from the embedded copies. It never blocks the
// commit. Command-layer adapters in cmd/pulseci handle flags and output and
// delegate the filesystem work here:
//
//	dir, err := setup.GetHooksDir()
//	path := filepath.Join(dir, setup.PreCommitHook)
//	status := setup.CheckHookStatus(path)
//	res, err := setup.Install(path, setup.InstallOptions{Chain: true})
//	restored, err := setup.Uninstall(path)
package setup
