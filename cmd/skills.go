package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/worldclock/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills [name]",
	Short: "List or print the development convention documents",
	Long: `Without arguments, lists the embedded convention documents.
With a name, prints that document as Markdown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkills,
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		body, err := skills.Read(args[0])
		if err != nil {
			return err
		}
		_, err = out.Write(body)
		return err
	}

	list := skills.List()
	if len(list) == 0 {
		logInfo("No skill documents embedded.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE")
	for _, s := range list {
		fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Title)
	}
	return w.Flush()
}
