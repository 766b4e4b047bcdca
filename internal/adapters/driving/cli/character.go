package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charforge/internal/adapters/driving/console"
	"github.com/custodia-labs/charforge/internal/core/domain"
)

var (
	listJSON bool
	showJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List finalized characters",
	Long:  `Lists every finalized character, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [character-id]",
	Short: "Show a finalized character",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [character-id]",
	Short: "Delete a finalized character",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output characters as JSON")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the character as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if characterService == nil {
		return errCharacterServiceMissing
	}

	characters, err := characterService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	if listJSON {
		if characters == nil {
			characters = []domain.Character{}
		}
		return outputJSON(cmd, characters)
	}

	if len(characters) == 0 {
		cmd.Println("No characters found. Run 'charforge create' to make one.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAGE\tKIND\tEYES\tHAIR\tCREATED")
	for i := range characters {
		c := &characters[i]
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Age, c.Kind,
			domain.Capitalize(c.EyeColor), domain.Capitalize(c.HairColor),
			c.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	if characterService == nil {
		return errCharacterServiceMissing
	}

	character, err := characterService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("character not found: %s", args[0])
		}
		return fmt.Errorf("failed to get character: %w", err)
	}

	if showJSON {
		return outputJSON(cmd, character)
	}

	person, err := character.Person()
	if err != nil {
		return fmt.Errorf("failed to load character: %w", err)
	}

	cmd.Printf("ID: %s\n", character.ID)
	cmd.Printf("Created: %s\n", character.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	console.DisplayInfo(cmd.OutOrStdout(), person)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if characterService == nil {
		return errCharacterServiceMissing
	}

	if err := characterService.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("character not found: %s", args[0])
		}
		return fmt.Errorf("failed to delete character: %w", err)
	}

	cmd.Printf("Deleted character: %s\n", args[0])
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
