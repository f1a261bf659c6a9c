package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/logger"
	"github.com/kisanlabs/plantdoctor/internal/media"
	"github.com/kisanlabs/plantdoctor/internal/report"
)

const defaultAskLanguage = "en"

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the plant doctor a single question",
	Example: `  plantdoctor ask --lang hi --image leaf.jpg "What is wrong with my tomato?"
  plantdoctor ask --image leaf.jpg --report-out report.html`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("image", "", "Photo of the crop")
	askCmd.Flags().String("audio", "", "Voice note")
	askCmd.Flags().Bool("json", false, "Print the raw response as JSON")
	askCmd.Flags().String("report-out", "", "Save a farmer report (.html or .md) when a diagnosis is made")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Language == "" {
		cfg.Language = defaultAskLanguage
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	logger.Setup(cmd.ErrOrStderr(), cfg.Level(), cfg.NoColor)

	imagePath, _ := cmd.Flags().GetString("image")
	audioPath, _ := cmd.Flags().GetString("audio")
	in, err := readInput(strings.Join(args, " "), imagePath, audioPath)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	conv, err := newConversation(ctx, cfg, st.EventRepo())
	if err != nil {
		return err
	}

	msg, err := conv.Send(ctx, in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(msg.Bot); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	} else {
		printResponse(out, *msg.Bot)
	}

	if path, _ := cmd.Flags().GetString("report-out"); path != "" {
		r, err := conv.RequestLatestReport()
		if err != nil {
			return fmt.Errorf("no report saved: %w", err)
		}
		if err := writeReport(path, r); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", path)
	}
	return nil
}

// readInput assembles a farmer message from the question and the optional
// attachment paths.
func readInput(text, imagePath, audioPath string) (chat.Input, error) {
	in := chat.Input{Text: strings.TrimSpace(text)}

	if imagePath != "" {
		uri, mime, err := media.LoadFile(imagePath)
		if err != nil {
			return chat.Input{}, err
		}
		if !media.IsImage(mime) {
			return chat.Input{}, fmt.Errorf("%s is not an image (%s)", imagePath, mime)
		}
		in.ImageURI = uri
	}
	if audioPath != "" {
		uri, mime, err := media.LoadFile(audioPath)
		if err != nil {
			return chat.Input{}, err
		}
		if !media.IsAudio(mime) {
			return chat.Input{}, fmt.Errorf("%s is not audio (%s)", audioPath, mime)
		}
		in.AudioURI = uri
		in.AudioMIMEType = mime
	}

	if in.Empty() {
		return chat.Input{}, fmt.Errorf("ask needs a question, --image or --audio")
	}
	return in, nil
}

func writeReport(path string, r report.FarmerReport) error {
	body := report.HTML(r)
	if strings.EqualFold(filepath.Ext(path), ".md") {
		body = report.Markdown(r)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func printResponse(w io.Writer, r chat.BotResponse) {
	heading := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.Faint)

	if r.TextResponse != "" {
		fmt.Fprintln(w, r.TextResponse)
	}

	if d := r.DiagnosisData; d != nil {
		fmt.Fprintln(w)
		if d.Confidence == chat.ConfidenceHigh {
			heading.Fprintf(w, "%s (%s)\n", d.DiseaseName, d.CropDetected)
		} else {
			color.New(color.FgYellow, color.Bold).Fprintf(w, "Unsure. Possibly %s\n", d.DiseaseName)
		}
		if d.Explanation != "" {
			fmt.Fprintln(w, d.Explanation)
		}
		if len(d.TreatmentSteps) > 0 {
			heading.Fprintln(w, "\nTreatment")
			for i, s := range d.TreatmentSteps {
				fmt.Fprintf(w, "  %d. %s\n", i+1, s)
			}
		}
		if len(d.PreventionTips) > 0 {
			heading.Fprintln(w, "\nPrevention")
			for _, s := range d.PreventionTips {
				fmt.Fprintf(w, "  - %s\n", s)
			}
		}
		if d.IsSafeOrganic {
			fmt.Fprintln(w, "\nOrganic treatment available.")
		}
	}

	for _, e := range r.ExpertsData {
		fmt.Fprintln(w)
		heading.Fprintf(w, "%s", e.Name)
		dim.Fprintf(w, "  %s\n", e.Role)
		fmt.Fprintf(w, "  %s\n  %s\n", e.Contact, e.Address)
	}
}
