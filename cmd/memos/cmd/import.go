package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-memos/internal/importer"
	importerUsecase "voice-memos/internal/importer/usecase"
	memoSQLite "voice-memos/internal/memo/repository/sqlite"
	"voice-memos/pkg/llmprovider"
	"voice-memos/pkg/whisper"
)

var importCmd = &cobra.Command{
	Use:   "import [DIR]",
	Short: "Transcribe new recordings and label them",
	Long: `Scans DIR (default: storage.dir) for audio files that are not memos yet,
transcribes them and asks the chat model for a category for every unlabelled memo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newImporter(cmd, true)
		if err != nil {
			printError("import", err)
			return err
		}
		report, err := uc.Run(cmd.Context(), importDir(args))
		fmt.Fprintln(cmd.OutOrStdout(), report)
		if err != nil {
			printError("import", err)
		}
		return err
	},
}

var autolabelCmd = &cobra.Command{
	Use:   "autolabel",
	Short: "Label every unlabelled memo with the chat model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newImporter(cmd, false)
		if err != nil {
			printError("autolabel", err)
			return err
		}
		out, err := uc.Label(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "labelled=%d label_failed=%d\n", out.Labelled, out.Failed)
		if err != nil {
			printError("autolabel", err)
		}
		return err
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [DIR]",
	Short: "Import recordings as they appear",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, err := newImporter(cmd, true)
		if err != nil {
			printError("watch", err)
			return err
		}
		if err := uc.Watch(cmd.Context(), importDir(args)); err != nil {
			printError("watch", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd, autolabelCmd, watchCmd)
}

func importDir(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return cfg.Storage.Dir
}

// newImporter wires the pipeline. The transcriber is only required when
// needSTT is set; without an LLM provider labelling is skipped.
func newImporter(cmd *cobra.Command, needSTT bool) (importer.UseCase, error) {
	ctx := cmd.Context()

	var transcriber whisper.ITranscriber
	if needSTT {
		client, err := whisper.New(whisper.Config{
			APIKey:            cfg.Transcription.APIKey,
			BaseURL:           cfg.Transcription.BaseURL,
			Model:             cfg.Transcription.Model,
			Language:          cfg.Transcription.Language,
			Prompt:            cfg.Transcription.Prompt,
			Timeout:           parseDuration(cfg.Transcription.Timeout, whisper.DefaultTimeout),
			RequestsPerMinute: cfg.Transcription.RequestsPerMinute,
		})
		if err != nil {
			return nil, err
		}
		transcriber = client
	}

	var chat importerUsecase.ChatModel
	if err := cfg.ValidateLLM(); err != nil {
		logger.Warnf(ctx, "Labelling disabled: %v", err)
	} else {
		manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
		if err != nil {
			return nil, fmt.Errorf("init LLM providers: %w", err)
		}
		chat = manager
	}

	return importerUsecase.New(memoSQLite.New(db, logger), logger, transcriber, chat, importer.Config{
		Extensions:            cfg.Import.Extensions,
		TranscribeConcurrency: cfg.Import.TranscribeConcurrency,
		LabelConcurrency:      cfg.Import.LabelConcurrency,
		Categories:            cfg.Import.Categories,
		WatchDebounce:         parseDuration(cfg.Import.WatchDebounce, importer.DefaultWatchDebounce),
	}), nil
}
