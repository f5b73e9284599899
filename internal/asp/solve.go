package asp

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"graphpart/internal/config"
	"graphpart/internal/errs"
	"graphpart/internal/partition"
)

// Solve writes prog to a scoped scratch file under cfg.ScratchDir,
// invokes the configured external solver binary against it, and parses
// the resulting partition. The scratch file is deleted before Solve
// returns regardless of outcome — the teacher's described behavior
// (writing to a fixed path and leaking it) is the bug spec.md §5 calls
// out, fixed here with a defer.
func Solve(ctx context.Context, cfg config.ASPConfig, prog Program) (partition.Partition, error) {
	if _, err := exec.LookPath(cfg.SolverBinary); err != nil {
		return partition.Partition{}, errs.Wrap(errs.SolverUnavailable, "asp solver binary not found: "+cfg.SolverBinary, err)
	}

	path := filepath.Join(cfg.ScratchDir, "graphpart-asp-"+uuid.NewString()+".lp")
	if err := os.WriteFile(path, []byte(prog.Source), 0o600); err != nil {
		return partition.Partition{}, errs.Wrap(errs.InvalidInput, "asp: failed to write scratch program", err)
	}
	defer os.Remove(path)

	args := append(append([]string(nil), cfg.SolverArgs...), path)
	cmd := exec.CommandContext(ctx, cfg.SolverBinary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// Clingo, like many ASP solvers, exits non-zero on
			// SATISFIABLE-with-optimum too (its exit code is a bitmask);
			// fall through and try to parse stdout regardless.
		} else {
			return partition.Partition{}, errs.Wrap(errs.SolverUnavailable, "asp: failed to run solver", err)
		}
	}

	groups, err := ParseAnswer(stdout.String(), prog.N, prog.K)
	if err != nil {
		return partition.Partition{}, err
	}
	return partition.New(groups), nil
}
