package provider

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		model     string
		openAIKey string
		geminiKey string
		want      Kind
	}{
		{name: "gemini with key", model: "models/gemini-2.5-flash", geminiKey: "k", want: KindGemini},
		{name: "gemini uppercase", model: "models/GEMINI-2.5-flash", geminiKey: "k", want: KindGemini},
		{name: "gemini without key", model: "models/gemini-2.5-flash", want: KindNone},
		{name: "gpt with key", model: "gpt-4o-mini", openAIKey: "k", want: KindOpenAI},
		{name: "gpt without key", model: "gpt-4o-mini", want: KindNone},
		{name: "gemini wins when both keys set", model: "models/gemini-2.5-flash", openAIKey: "k", geminiKey: "k", want: KindGemini},
		{name: "unknown family", model: "claude-3-haiku-20240307", openAIKey: "k", geminiKey: "k", want: KindNone},
		{name: "blank key is absent", model: "gpt-4o-mini", openAIKey: "   ", want: KindNone},
		{name: "empty model", model: "", openAIKey: "k", geminiKey: "k", want: KindNone},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.model, tc.openAIKey, tc.geminiKey); got != tc.want {
				t.Fatalf("Classify(%q) = %s, want %s", tc.model, got, tc.want)
			}
		})
	}
}
