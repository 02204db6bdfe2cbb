package cli

import (
	"fmt"

	"github.com/pion/decodebench/internal/bench"
	"github.com/pion/decodebench/internal/suite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const maxReps = 1000000

func newRunCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run benchmark suites, all of them when none are named",
		Example: `  decodebench run go_png klauspost_gzip
  decodebench run --focus=go_jpeg_decode_image_552k --reps=10
  DECODEBENCH_ITERSCALE=1 decodebench run go_gif`,
		RunE: func(cmd *cobra.Command, args []string) error {
			suites, err := selectSuites(args)
			if err != nil {
				return err
			}

			focus := bench.ParseFocus(v.GetString("focus"))
			reps := v.GetInt("reps")
			if reps < -1 || reps > maxReps {
				return fmt.Errorf("out-of-range --reps=%d value", reps)
			}
			iterScale := v.GetInt("iterscale")
			if iterScale < 0 || iterScale > maxReps {
				return fmt.Errorf("out-of-range --iterscale=%d value", iterScale)
			}

			for _, s := range suites {
				r := bench.NewRunner(s)
				r.Focus = focus
				if reps >= 0 {
					r.Reps = &reps
				}
				r.IterScale = uint64(iterScale)
				r.Out = cmd.OutOrStdout()
				if s.Stderr {
					r.Out = cmd.ErrOrStderr()
				}
				if len(r.Configs()) == 0 {
					continue
				}
				if err := r.Run(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("focus", "", "comma separated benchmark name prefixes to run")
	flags.Int("reps", -1, "repetitions per benchmark after the warm-up, -1 for the suite default")
	flags.Int("iterscale", 0, "iteration scale factor, 0 for the suite default")
	bindFlags(v, flags, "focus", "reps", "iterscale")
	return cmd
}

func selectSuites(names []string) ([]bench.Suite, error) {
	if len(names) == 0 {
		return suite.All(), nil
	}
	suites := make([]bench.Suite, 0, len(names))
	for _, name := range names {
		s, err := suite.Lookup(name)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}
