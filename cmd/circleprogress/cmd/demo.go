package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/circleprogress/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive terminal demo",
	Long: `Demo shows the view in the terminal with seek bars for progress and
stroke width. Space plays the animation; arrows or hjkl drag the bars;
p, i and t toggle the rings, the image and the tint.`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlag(cmd, "image.size", "image-size")
		bindFlag(cmd, "log_file", "log-file")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		return demo.Run(demoConfig(s))
	},
}

func init() {
	demoCmd.Flags().Int("image-size", 0, "side of the cropped center image in pixels")
	demoCmd.Flags().String("log-file", "", "append logs and reported errors to this file while the demo runs")
	rootCmd.AddCommand(demoCmd)
}

// demoConfig maps the session onto the demo. The image path is loaded by
// the demo itself so the placeholder shows first.
func demoConfig(s *session) demo.Config {
	return demo.Config{
		Attributes: s.attrs,
		Registry:   s.reg,
		ImagePath:  s.cfg.Image.Path,
		ImageSize:  s.imageSize(),
		Tint:       s.tint,
		Background: s.bg,
		LogFile:    s.cfg.LogFile,
	}
}
