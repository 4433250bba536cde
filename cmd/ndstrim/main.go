// ndstrim removes the padding appended to Nintendo DS(i) ROM files.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ndshome/ndstrim/trimmer"
)

var (
	simulate  bool
	inPlace   bool
	extension string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "ndstrim [flags] file ...",
	Short: "Trim padding from Nintendo DS(i) ROM files",
	Long: `ndstrim validates each ROM's header and removes the padding appended
beyond the declared content size. ROMs carrying an RSA certificate keep it,
so Download Play functionality survives trimming.

By default a trimmed copy is written next to the source file; pass --inplace
to shrink the source file itself. Failures on individual files are reported
and do not stop the rest of the batch.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&simulate, "simulate", "s", false, "report sizes without trimming")
	flags.BoolVarP(&inPlace, "inplace", "i", false, "trim files in-place")
	flags.StringVarP(&extension, "extension", "e", trimmer.DefaultExtension, "extension for trimmed copies")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	tr := trimmer.New(
		trimmer.WithSimulate(simulate),
		trimmer.WithInPlace(inPlace),
		trimmer.WithExtension(extension),
		trimmer.WithLogger(logrus.StandardLogger()),
		trimmer.WithResultCallback(func(r trimmer.Result) {
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "'%s': %v\n", r.Source, r.Err)
				return
			}
			fmt.Printf("'%s': size reduced from %d to %d\n", r.Dest, r.OriginalSize, r.TrimmedSize)
		}),
	)
	tr.Run(args)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
