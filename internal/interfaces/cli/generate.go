package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	designtypes "github.com/canopyforge/canopyforge/pkg/types/design"

	"github.com/canopyforge/canopyforge/internal/application/design"
)

// newGenerateCmd builds the generate subcommand: one full pipeline run from
// command-line parameters.
func newGenerateCmd() *cobra.Command {
	var req designtypes.Request
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the gore pattern and canopy mesh for one design",
		Example: `  canopyforge generate --diameter 2.0 --gores 12 --seam 1.5 --spill 20
  canopyforge generate -d 1.2 -g 8 --preview -o build/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			svc := design.NewService(*cliCtx.Config, cliCtx.Logger, nil)
			result, err := svc.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				return PrintJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pattern: %s\n", result.PatternPath)
			fmt.Fprintf(out, "Mesh:    %s (%d vertices, %d faces)\n",
				result.MeshPath, result.VertexCount, result.FaceCount)
			if result.PreviewPath != "" {
				fmt.Fprintf(out, "Preview: %s\n", result.PreviewPath)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&req.DiameterM, "diameter", "d", 0, "inflated canopy diameter in metres (required)")
	f.IntVarP(&req.Gores, "gores", "g", 0, "number of fabric panels (required)")
	f.Float64Var(&req.SeamAllowanceCM, "seam", 0, "seam allowance in centimetres")
	f.Float64Var(&req.SpillDiameterCM, "spill", 0, "spill hole diameter in centimetres (0 disables)")
	f.IntVar(&req.PhiSteps, "phi-steps", 0, "latitude samples per gore (default from config)")
	f.IntVar(&req.ThetaSteps, "theta-steps", 0, "longitude samples per gore (default from config)")
	f.IntVar(&req.CurveResolution, "curve-resolution", 0, "gore outline samples (default from config)")
	f.Float64Var(&req.Inflation, "inflation", 0, "height scale relative to a true hemisphere (default from config)")
	f.BoolVar(&req.Preview, "preview", false, "also render a wireframe preview PNG")
	f.BoolVar(&asJSON, "json", false, "print the run result as JSON")

	cobra.CheckErr(cmd.MarkFlagRequired("diameter"))
	cobra.CheckErr(cmd.MarkFlagRequired("gores"))
	return cmd
}
