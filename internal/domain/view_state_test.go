package domain

import (
	"reflect"
	"testing"
)

func TestSelectClearRoundTrip(t *testing.T) {
	before := NewViewState().WithFilter(Filter(RiskHigh))
	after := before.Select("Chittagong Port").ClearSelection()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("round trip changed state: %#v -> %#v", before, after)
	}
}

func TestSelectDoesNotAliasPreviousState(t *testing.T) {
	a := NewViewState().Select("x")
	b := a.Select("y")
	if a.SelectedName() != "x" || b.SelectedName() != "y" {
		t.Fatalf("states alias each other: %q %q", a.SelectedName(), b.SelectedName())
	}
}

func TestViewStateHref(t *testing.T) {
	tests := []struct {
		state ViewState
		want  string
	}{
		{NewViewState(), "/"},
		{NewViewState().WithFilter(Filter(RiskVeryHigh)), "/?filter=very+high"},
		{NewViewState().Select("Chittagong Port"), "/?selected=Chittagong+Port"},
		{NewViewState().WithFilter("port").Select("Chittagong Port"), "/?filter=port&selected=Chittagong+Port"},
	}
	for _, tt := range tests {
		if got := tt.state.Href(); got != tt.want {
			t.Errorf("Href() = %q, want %q", got, tt.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Lat: 22.3089, Lon: 91.8}
	if got, want := p.String(), "22.3089°N, 91.8000°E"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	p = Position{Lat: -1.5, Lon: -70.25}
	if got, want := p.String(), "1.5000°S, 70.2500°W"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestLabels(t *testing.T) {
	if got := RiskVeryHigh.Label(); got != "Very high Risk" {
		t.Errorf("RiskVeryHigh.Label() = %q", got)
	}
	if got := CategoryRailway.Label(); got != "Railway" {
		t.Errorf("CategoryRailway.Label() = %q", got)
	}
}
