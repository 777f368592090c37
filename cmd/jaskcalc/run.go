package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/script"
)

type runOptions struct {
	file   string
	trace  bool
	record bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [keys...]",
		Short: "Press a key sequence and print the display and result",
		Example: `  jaskcalc run 12 + 3 =
  jaskcalc run --trace "1 + 2 - 3 ="
  jaskcalc run --file keys.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			src, err := readKeys(cmd.InOrStdin(), opts.file, args)
			if err != nil {
				return err
			}
			return runKeys(cmd, cfg, src, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read keys from a file (- for stdin)")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print every render instead of the final screen")
	cmd.Flags().BoolVar(&opts.record, "record", false, "append evaluations to the tape")
	return cmd
}

func readKeys(stdin io.Reader, file string, args []string) (string, error) {
	switch file {
	case "":
		return strings.Join(args, " "), nil
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read keys: %w", err)
		}
		return string(b), nil
	}
}

func runKeys(cmd *cobra.Command, cfg config.Config, src string, opts runOptions) error {
	buttons, err := script.Parse(src)
	if err != nil {
		return err
	}

	var onEval func(calc.Evaluation)
	if opts.record && cfg.History.Enabled {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		onEval = func(ev calc.Evaluation) {
			if _, err := st.tape.Record(cmd.Context(), ev); err != nil {
				log.Printf("warn: record %s: %v", ev, err)
			}
		}
	}

	trace := &script.Trace{}
	m := calc.New(calc.NewState(), trace, cfg.CalcOptions())
	if err := script.Run(m, buttons, onEval); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.trace {
		_, err := trace.WriteTo(out)
		return err
	}
	fmt.Fprintf(out, "display: %s\nresult:  %s\n", m.State().DisplayText(), m.ResultText())
	return nil
}
