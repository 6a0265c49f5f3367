package assets

import "testing"

func TestBundledArenas(t *testing.T) {
	presets := LoadArenas()
	if len(presets) != 3 {
		t.Fatalf("loaded %d presets, want 3", len(presets))
	}
	names := []string{"arcade", "classic", "purist"}
	for i, want := range names {
		if presets[i].Name != want {
			t.Fatalf("preset %d = %q, want %q", i, presets[i].Name, want)
		}
	}
	if presets[1].FieldWidth != 960 || presets[1].FieldHeight != 720 {
		t.Fatalf("classic field = %vx%v", presets[1].FieldWidth, presets[1].FieldHeight)
	}
	if presets[2].Fever {
		t.Fatal("purist arena should disable fever")
	}
}

func TestSynthesizeLength(t *testing.T) {
	tone := Tone{Freq: 440, EndFreq: 880, Duration: 0.1, Volume: 1}
	data := Synthesize(tone, 44100)
	if len(data) != 4410*4 {
		t.Fatalf("len = %d, want %d", len(data), 4410*4)
	}
	// Attack starts from silence.
	if data[0] != 0 || data[1] != 0 {
		t.Fatalf("first sample = %v, want silence", data[:2])
	}
	if Synthesize(Tone{Duration: 0}, 44100) != nil {
		t.Fatal("zero duration should render nothing")
	}
}
