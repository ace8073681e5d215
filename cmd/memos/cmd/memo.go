package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"voice-memos/internal/memo"
)

var listLabel string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List memos ordered by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newMemoUseCase().Load(cmd.Context())
		if err != nil {
			printError("list", err)
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tLABEL\tCONTENT")
		for _, m := range out.Memos {
			if listLabel != "" && m.LabelOrEmpty() != listLabel {
				continue
			}
			label := m.LabelOrEmpty()
			if label == "" {
				label = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, label, preview(m.Content, 60))
		}
		return w.Flush()
	},
}

var killCmd = &cobra.Command{
	Use:   "kill NAME...",
	Short: "Delete memos",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newMemoUseCase().Kill(cmd.Context(), args); err != nil {
			printError("kill", err)
			return err
		}
		return nil
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge NAME NAME...",
	Short: "Merge memos into one",
	Long: `Replaces the named memos with a single memo whose name is the
comma-joined names and whose content is the contents joined by blank lines.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newMemoUseCase().Merge(cmd.Context(), args)
		if err != nil {
			printError("merge", err)
			return err
		}
		if out.Memo.Name == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to merge")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "merged into %s (%s)\n", out.Memo.Name, out.Memo.LabelOrEmpty())
		return nil
	},
}

var setContentCmd = &cobra.Command{
	Use:   "set-content NAME [CONTENT]",
	Short: "Replace the transcript of a memo",
	Long:  `Replaces the transcript of NAME. Without CONTENT, or with "-", it is read from stdin.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := contentArg(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		if err := newMemoUseCase().SetContent(cmd.Context(), memo.SetContentInput{Name: args[0], Content: content}); err != nil {
			printError("set-content", err)
			return err
		}
		return nil
	},
}

var labelCmd = &cobra.Command{
	Use:   "label NAME LABEL",
	Short: "Set the category of a memo",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newMemoUseCase().SetLabel(cmd.Context(), memo.SetLabelInput{Name: args[0], Label: args[1]}); err != nil {
			printError("label", err)
			return err
		}
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open NAME...",
	Short: "Play the recordings with the configured player",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newMemoUseCase().Open(cmd.Context(), args); err != nil {
			printError("open", err)
			return err
		}
		return nil
	},
}

var thingsCmd = &cobra.Command{
	Use:   "things NAME...",
	Short: "Create a Things to-do per memo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newMemoUseCase().AddToThings(cmd.Context(), args); err != nil {
			printError("things", err)
			return err
		}
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy NAME...",
	Short: "Copy memo contents to the clipboard",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newMemoUseCase().Copy(cmd.Context(), args); err != nil {
			printError("copy", err)
			return err
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listLabel, "label", "l", "", "only memos with this label")

	rootCmd.AddCommand(listCmd, killCmd, mergeCmd, setContentCmd, labelCmd, openCmd, thingsCmd, copyCmd)
}

func contentArg(stdin io.Reader, args []string) (string, error) {
	if len(args) == 2 && args[1] != "-" {
		return args[1], nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

// preview returns the first line of s, cut to max runes.
func preview(s string, max int) string {
	line, _, _ := strings.Cut(s, "\n")
	r := []rune(line)
	if len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return line
}

