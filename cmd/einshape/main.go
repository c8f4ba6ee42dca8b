// Package main provides the einshape CLI.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/einshape/einops"
	"github.com/born-ml/einshape/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("einshape %s\n", version)
			return
		case "plan":
			if len(os.Args) < 4 {
				fmt.Fprintln(os.Stderr, "usage: einshape plan <pattern> <dims> [name=length ...]")
				os.Exit(2)
			}
			if err := runPlan(os.Args[2], os.Args[3], os.Args[4:]); err != nil {
				fmt.Fprintf(os.Stderr, "einshape: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("einshape - einops-style tensor rearrangement for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                                Show version")
	fmt.Println("  plan <pattern> <dims> [name=length]    Show the execution plan for a pattern")
	fmt.Println("")
	fmt.Println("Example:")
	fmt.Println("  einshape plan \"(h w) c -> h w c\" 12,10 h=3")
}

func runPlan(pattern, dims string, lengthArgs []string) error {
	shape, err := parseShape(dims)
	if err != nil {
		return err
	}

	axes, err := parseAxes(lengthArgs)
	if err != nil {
		return err
	}

	info, err := einops.Plan(shape, pattern, axes)
	if err != nil {
		return err
	}

	fmt.Printf("pattern:  %s\n", pattern)
	fmt.Printf("input:    %v\n", shape)
	fmt.Printf("output:   %v\n", info.OutputShape)
	if len(info.Permutation) > 0 {
		fmt.Printf("permute:  %v\n", info.Permutation)
	} else {
		fmt.Println("permute:  none (generic path)")
	}
	for _, r := range info.Repeats {
		fmt.Printf("repeat:   axis %d -> %d (broadcast)\n", r.Index, r.Size)
	}
	return nil
}

func parseShape(dims string) (tensor.Shape, error) {
	parts := strings.Split(dims, ",")
	shape := make(tensor.Shape, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", p, err)
		}
		shape = append(shape, n)
	}
	return shape, nil
}

func parseAxes(args []string) (einops.Axes, error) {
	if len(args) == 0 {
		return nil, nil
	}
	axes := make(einops.Axes, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid axis length %q (want name=length)", arg)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid axis length %q: %w", arg, err)
		}
		axes[name] = n
	}
	return axes, nil
}
