package crm

import "testing"

func TestResolveLocatorCitationMatch(t *testing.T) {
	citations := []Citation{
		{Title: "Some Other Shop", URI: "https://maps.google.com/other"},
		{Title: "Brooklyn Pipes Plumbing - Google Maps", URI: "https://maps.google.com/brooklyn-pipes"},
	}

	got := ResolveLocator("Brooklyn Pipes Plumbing", "55 Water St", "Brooklyn, NY", citations)
	if got != "https://maps.google.com/brooklyn-pipes" {
		t.Fatalf("ResolveLocator() = %q, want matched citation URI", got)
	}
}

func TestResolveLocatorBidirectionalContainment(t *testing.T) {
	// Lead name containing the citation title also counts as a match.
	citations := []Citation{{Title: "brooklyn pipes", URI: "https://maps.google.com/bp"}}

	got := ResolveLocator("Brooklyn Pipes Plumbing LLC", "", "Brooklyn, NY", citations)
	if got != "https://maps.google.com/bp" {
		t.Fatalf("ResolveLocator() = %q, want matched citation URI", got)
	}
}

func TestResolveLocatorFirstMatchWins(t *testing.T) {
	citations := []Citation{
		{Title: "Brooklyn Pipes", URI: "https://maps.google.com/first"},
		{Title: "Brooklyn Pipes Plumbing", URI: "https://maps.google.com/second"},
	}

	got := ResolveLocator("Brooklyn Pipes", "", "", citations)
	if got != "https://maps.google.com/first" {
		t.Fatalf("ResolveLocator() = %q, want first matching citation", got)
	}
}

func TestResolveLocatorMatchWithoutURIFallsBack(t *testing.T) {
	citations := []Citation{{Title: "Brooklyn Pipes", URI: ""}}

	got := ResolveLocator("Brooklyn Pipes", "55 Water St", "", citations)
	want := "https://www.google.com/maps/search/?api=1&query=Brooklyn+Pipes+55+Water+St"
	if got != want {
		t.Fatalf("ResolveLocator() = %q, want %q", got, want)
	}
}

func TestResolveLocatorNoMatchUsesGeography(t *testing.T) {
	got := ResolveLocator("Brooklyn Pipes", "", "Brooklyn, NY", nil)
	want := "https://www.google.com/maps/search/?api=1&query=Brooklyn+Pipes+Brooklyn%2C+NY"
	if got != want {
		t.Fatalf("ResolveLocator() = %q, want %q", got, want)
	}
}

func TestResolveLocatorIdempotent(t *testing.T) {
	citations := []Citation{{Title: "Apex Plumbing", URI: "https://maps.google.com/apex"}}

	first := ResolveLocator("Apex Plumbing", "", "NYC", citations)
	second := ResolveLocator("Apex Plumbing", "", "NYC", citations)
	if first != second {
		t.Fatalf("ResolveLocator() not deterministic: %q vs %q", first, second)
	}
}

func TestFallbackLocatorEscapesQuery(t *testing.T) {
	got := FallbackLocator("A&B Plumbing", "12 Main St", "")
	want := "https://www.google.com/maps/search/?api=1&query=A%26B+Plumbing+12+Main+St"
	if got != want {
		t.Fatalf("FallbackLocator() = %q, want %q", got, want)
	}
}
