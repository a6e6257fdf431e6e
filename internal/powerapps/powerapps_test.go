package powerapps

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalogLoads(t *testing.T) {
	t.Parallel()

	catalog := Catalog()
	if len(catalog) != 3 {
		t.Fatalf("expected 3 apps, got %d", len(catalog))
	}

	seen := make(map[string]bool)
	for _, app := range catalog {
		if seen[app.ID] {
			t.Fatalf("duplicate app id %q", app.ID)
		}
		seen[app.ID] = true
		if len(app.Fields) == 0 {
			t.Fatalf("app %q has no fields", app.ID)
		}
	}
	for _, id := range []string{"calibration-brief", "afericao-checklist", "variance-analyzer"} {
		if !seen[id] {
			t.Fatalf("app %q missing", id)
		}
	}
}

func TestRenderUnknownApp(t *testing.T) {
	t.Parallel()

	_, err := Render("nonsense", nil)
	if !errors.Is(err, ErrUnknownApp) {
		t.Fatalf("expected ErrUnknownApp, got %v", err)
	}
}

func TestRenderMissingRequiredField(t *testing.T) {
	t.Parallel()

	_, err := Render("calibration-brief", map[string]string{
		"instrument": "FM-882",
		// measurements is required and blank
		"measurements": "   ",
	})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if !strings.Contains(err.Error(), "measurements") {
		t.Fatalf("error must name the field, got %q", err)
	}
}

func TestRenderCalibrationBrief(t *testing.T) {
	t.Parallel()

	prompt, err := Render("calibration-brief", map[string]string{
		"instrument":   "Ultrasonic flow meter FM-882",
		"environment":  "Ambient 23ºC",
		"measurements": "Ref 10.000 / Read 10.015",
		"tolerance":    "±0.25%",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Prepare a calibration briefing using the data below. Include:",
		"1. Compliance verdict vs tolerance",
		"2. Notable deviations & root causes",
		"3. Recommended follow-up actions",
		"4. Summary paragraph for client report",
		"",
		"Instrument: Ultrasonic flow meter FM-882",
		"Environment: Ambient 23ºC",
		"Measurements:",
		"Ref 10.000 / Read 10.015",
		"Tolerance: ±0.25%",
	}, "\n")
	if prompt != want {
		t.Fatalf("prompt mismatch:\n got: %q\nwant: %q", prompt, want)
	}
}

func TestRenderCalibrationBriefSkipsEmptyOptionalSections(t *testing.T) {
	t.Parallel()

	prompt, err := Render("calibration-brief", map[string]string{
		"instrument":   "FM-882",
		"measurements": "Ref 10 / Read 10.1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, absent := range []string{"Environment:", "Tolerance:", "Field Notes:"} {
		if strings.Contains(prompt, absent) {
			t.Fatalf("optional section %q must be omitted:\n%s", absent, prompt)
		}
	}
}

func TestRenderChecklist(t *testing.T) {
	t.Parallel()

	prompt, err := Render("afericao-checklist", map[string]string{
		"workflow":  "Receiving inspection",
		"standards": "ISO/IEC 17025",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(prompt, "Workflow phases:\nReceiving inspection") {
		t.Fatalf("workflow section missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Standards: ISO/IEC 17025") {
		t.Fatalf("standards section missing:\n%s", prompt)
	}
	if strings.Contains(prompt, "Risks:") {
		t.Fatalf("empty risks section must be omitted:\n%s", prompt)
	}
}

func TestRenderVarianceAnalyzerConstraintPlacement(t *testing.T) {
	t.Parallel()

	prompt, err := Render("variance-analyzer", map[string]string{
		"datasetSummary": "Run A: mean 10.2",
		"constraints":    "Cannot halt production",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Constraints render between the numbered list and the dataset block.
	constraintsAt := strings.Index(prompt, "Constraints to respect: Cannot halt production")
	datasetAt := strings.Index(prompt, "Dataset:\nRun A: mean 10.2")
	if constraintsAt == -1 || datasetAt == -1 {
		t.Fatalf("expected sections missing:\n%s", prompt)
	}
	if constraintsAt > datasetAt {
		t.Fatalf("constraints must precede the dataset:\n%s", prompt)
	}
}

func TestSuggestedSystemPromptOnlyOnCalibrationBrief(t *testing.T) {
	t.Parallel()

	brief, _ := Lookup("calibration-brief")
	if brief.SuggestedSystemPrompt == "" {
		t.Fatal("calibration-brief should carry a suggested system prompt")
	}

	checklist, _ := Lookup("afericao-checklist")
	if checklist.SuggestedSystemPrompt != "" {
		t.Fatalf("unexpected system prompt on checklist: %q", checklist.SuggestedSystemPrompt)
	}
}
