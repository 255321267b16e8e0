/*
Copyright © 2025 studydrop
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/studydrop/studydrop-be/service"
	"github.com/studydrop/studydrop-be/types"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text from a local PDF",
	Long: `Runs the same extraction the upload endpoint uses against a local
PDF file and prints the character count and preview. Useful for checking
whether a document has a usable text layer before uploading it.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		if filePath == "" {
			log.Fatal("missing --file")
		}
		maxChars, _ := cmd.Flags().GetInt("max-chars")

		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		pdfService := service.NewPDFService(types.DocumentServiceConfig{
			MaxChars: maxChars,
		})
		result, err := pdfService.Extract(data, filePath)
		if err != nil {
			log.Fatalf("Extraction failed: %v", err)
		}

		fmt.Println("Characters:", result.CharCount)
		fmt.Println("Preview:")
		fmt.Println(result.Preview)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("file", "f", "", "Path to the PDF file")
	extractCmd.Flags().Int("max-chars", 40000, "Maximum characters to keep")
}
