package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finspeak/finspeak/internal/educate"
	"github.com/finspeak/finspeak/internal/model"
)

// termsCmd represents the terms command
var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List the financial terms FinSpeak can explain",
	Long: `Terms lists the canonical financial terms with built-in explanations.

Ask about any of them in English, Hindi, or Hinglish:
  finspeak ask "what is sip"
  finspeak ask "एनएवी क्या है"
  finspeak ask "expense ratio kya hota hai"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		explainer := educate.New(model.LLMConfig{})
		for _, term := range explainer.AvailableTerms() {
			fmt.Println(term)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(termsCmd)
}
