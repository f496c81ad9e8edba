package domain

import "testing"

func TestAll_Order(t *testing.T) {
	want := []Key{FullStack, AIML, UIUX, Data, Cyber}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKey_Rank(t *testing.T) {
	tests := []struct {
		key  Key
		want int
	}{
		{FullStack, 0},
		{AIML, 1},
		{UIUX, 2},
		{Data, 3},
		{Cyber, 4},
		{"devops", -1},
	}
	for _, tt := range tests {
		if got := tt.key.Rank(); got != tt.want {
			t.Errorf("Key(%q).Rank() = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestEveryKeyHasMetadataAndRoadmap(t *testing.T) {
	for _, k := range All() {
		info, ok := Lookup(k)
		if !ok {
			t.Errorf("no metadata for %q", k)
			continue
		}
		if info.Key != k {
			t.Errorf("Lookup(%q).Key = %q", k, info.Key)
		}
		if info.Name == "" || info.Description == "" {
			t.Errorf("incomplete metadata for %q: %+v", k, info)
		}
		if len(info.Traits) == 0 {
			t.Errorf("no traits for %q", k)
		}
		if n := len(Roadmap(k)); n != 6 {
			t.Errorf("len(Roadmap(%q)) = %d, want 6", k, n)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	info, _ := Lookup(Data)
	info.Traits[0] = "mutated"

	again, _ := Lookup(Data)
	if again.Traits[0] == "mutated" {
		t.Error("Lookup leaked internal traits slice")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"fullstack", FullStack, false},
		{"  AIML ", AIML, false},
		{"data science", Data, false},
		{"Cybersecurity", Cyber, false},
		{"devops", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOnRoadmap(t *testing.T) {
	if !OnRoadmap(Cyber, "Cryptography") {
		t.Error("expected Cryptography on the cyber roadmap")
	}
	if OnRoadmap(UIUX, "Cryptography") {
		t.Error("Cryptography should not be on the uiux roadmap")
	}
}
