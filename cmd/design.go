package cmd

import (
	"github.com/EdGreen21/ImmunoNodes/config"
	"github.com/EdGreen21/ImmunoNodes/internal/assembly"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// designCmd assembles a string-of-beads vaccine from an epitope file and
// an HLA allele distribution.
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a string-of-beads vaccine with sequence-optimized spacers",
	Long: `Design a string-of-beads polypeptide vaccine: order the input epitopes and
pick a spacer (up to length K) for every junction so that epitope recovery by
the proteasome is maximized and the immunogenicity of neo-epitopes arising at
the junctions is minimized.

Every ordered epitope pair is scored with the chosen cleavage and binding
predictors, and the cheapest total ordering is found exactly; pass
--approximate to try a fast heuristic first`,
	Run: runDesign,
}

func runDesign(cmd *cobra.Command, args []string) {
	conf, err := config.New()
	if err != nil {
		stderr.Fatal(err)
	}

	peptides, err := assembly.ReadPeptides(conf.In)
	if err != nil {
		stderr.Fatal(err)
	}
	alleles, err := assembly.ReadAlleles(conf.Alleles)
	if err != nil {
		stderr.Fatal(err)
	}
	thresholds := assembly.NewThresholdTable(alleles, conf.Threshold)

	result, err := assembly.Design(assembly.Params{
		Peptides:         peptides,
		Alleles:          alleles,
		Thresholds:       thresholds,
		MaxSpacerLen:     conf.MaxLength,
		Alpha:            conf.Alpha,
		Beta:             conf.Beta,
		CleavageMethod:   conf.Cleavage,
		BindingMethod:    conf.Binding,
		Threads:          conf.Threads,
		ApproximateFirst: conf.Approximate,
	})
	if err != nil {
		stderr.Fatal(err)
	}

	assembly.Summarize(result, thresholds)
	if err := assembly.Write(conf.Out, result); err != nil {
		stderr.Fatal(err)
	}
}

// set flags
func init() {
	RootCmd.AddCommand(designCmd)
	config.SetDefaults()

	designCmd.Flags().StringP("in", "i", "", "Input file with epitopes, one peptide per line")
	designCmd.Flags().StringP("alleles", "a", "", "File with HLA alleles and their frequencies, one per line")
	designCmd.Flags().StringP("out", "o", "", "Output file for the assembled design")
	designCmd.Flags().IntP("max-length", "k", 6, "Maximum spacer length")
	designCmd.Flags().Float64("alpha", 0.99, "Weight of epitope recovery (cleavage)")
	designCmd.Flags().Float64("beta", 0.0, "Weight of neo-epitope immunogenicity avoidance")
	designCmd.Flags().StringP("cleavage", "c", "pcm", "Cleavage prediction method (pcm, proteasmm_c, proteasmm_i)")
	designCmd.Flags().StringP("binding", "b", "syfpeithi", "Binding prediction method (syfpeithi, smm, smmpmbec, bimas)")
	designCmd.Flags().Float64("threshold", 20.0, "Binding score threshold for neo-epitope detection")
	designCmd.Flags().IntP("threads", "t", 0, "Worker count for junction evaluation (default all logical CPUs)")
	designCmd.Flags().Bool("approximate", false, "Try the approximate solver before the exact one")

	designCmd.MarkFlagRequired("in")
	designCmd.MarkFlagRequired("alleles")
	designCmd.MarkFlagRequired("out")

	viper.BindPFlag("in", designCmd.Flags().Lookup("in"))
	viper.BindPFlag("alleles", designCmd.Flags().Lookup("alleles"))
	viper.BindPFlag("out", designCmd.Flags().Lookup("out"))
	viper.BindPFlag("max-length", designCmd.Flags().Lookup("max-length"))
	viper.BindPFlag("alpha", designCmd.Flags().Lookup("alpha"))
	viper.BindPFlag("beta", designCmd.Flags().Lookup("beta"))
	viper.BindPFlag("cleavage", designCmd.Flags().Lookup("cleavage"))
	viper.BindPFlag("binding", designCmd.Flags().Lookup("binding"))
	viper.BindPFlag("threshold", designCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("threads", designCmd.Flags().Lookup("threads"))
	viper.BindPFlag("approximate", designCmd.Flags().Lookup("approximate"))
}
