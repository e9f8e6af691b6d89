package poetry

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandError reports a failed underlying command together with its exit
// code, so callers can propagate it verbatim.
type CommandError struct {
	Args     []string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("poetry %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// InstallOpts configures an install operation.
type InstallOpts struct {
	// Sync removes packages not referenced by any project from the environment.
	Sync bool
}

// UpdateOpts configures an update operation.
type UpdateOpts struct {
	LockOnly bool
	DryRun   bool
}

// AddOpts configures an add operation.
type AddOpts struct {
	// LockOnly stops the underlying command after the manifest and lock
	// changes, skipping environment installation.
	LockOnly bool
	DryRun   bool
}

// RemoveOpts configures a remove operation.
type RemoveOpts struct {
	LockOnly bool
	DryRun   bool
}

// Lock runs the lock operation in dir with any extra pass-through args.
func Lock(dir string, extra ...string) error {
	return run(dir, append([]string{"lock"}, extra...)...)
}

// Install runs the install operation in dir with any extra pass-through args.
func Install(dir string, opts InstallOpts, extra ...string) error {
	args := []string{"install"}
	if opts.Sync {
		args = append(args, "--sync")
	}
	args = append(args, extra...)
	return run(dir, args...)
}

// Update runs the update operation in dir. pkgs carries the update targets
// plus any pass-through arguments, forwarded verbatim.
func Update(dir string, pkgs []string, opts UpdateOpts) error {
	args := []string{"update"}
	if opts.LockOnly {
		args = append(args, "--lock")
	}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}
	args = append(args, pkgs...)
	return run(dir, args...)
}

// Add adds packages to the manifest in dir. pkgs carries the package specs
// plus any pass-through arguments, forwarded verbatim.
func Add(dir string, pkgs []string, opts AddOpts) error {
	args := []string{"add"}
	if opts.LockOnly {
		args = append(args, "--lock")
	}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}
	args = append(args, pkgs...)
	return run(dir, args...)
}

// Remove removes packages from the manifest in dir. pkgs carries the package
// names plus any pass-through arguments, forwarded verbatim.
func Remove(dir string, pkgs []string, opts RemoveOpts) error {
	args := []string{"remove"}
	if opts.LockOnly {
		args = append(args, "--lock")
	}
	if opts.DryRun {
		args = append(args, "--dry-run")
	}
	args = append(args, pkgs...)
	return run(dir, args...)
}

// Build runs the packaging step in dir with any extra pass-through args.
func Build(dir string, extra ...string) error {
	return run(dir, append([]string{"build"}, extra...)...)
}

// Export runs the export command in dir with any extra pass-through args.
func Export(dir string, extra []string) error {
	args := append([]string{"export"}, extra...)
	return run(dir, args...)
}

// EnvPath returns the environment directory associated with the project in dir.
func EnvPath(dir string) (string, error) {
	out, err := output(dir, "env", "info", "--path")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Run executes argv through the environment of the given project while
// keeping dir as the working directory.
func Run(dir, project string, argv []string) error {
	args := append([]string{"--project", project, "run", "--"}, argv...)
	return run(dir, args...)
}

// Exec invokes the unmodified underlying command from dir, passing argv
// through verbatim. Used when the plugin is disabled.
func Exec(dir string, argv []string) error {
	cmd := exec.Command("poetry", argv...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return wrap(argv, cmd.Run())
}

// run executes a poetry command in the given directory with streaming output.
func run(dir string, args ...string) error {
	cmd := exec.Command("poetry", args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return wrap(args, cmd.Run())
}

// output executes a poetry command and returns its stdout.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("poetry", args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", wrap(args, err)
	}
	return stdout.String(), nil
}

func wrap(args []string, err error) error {
	if err == nil {
		return nil
	}
	code := 1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &CommandError{Args: args, ExitCode: code, Err: err}
}
