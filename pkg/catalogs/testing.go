package catalogs

import (
	"testing"
)

// TestGame creates a game from the given fields, failing the test on error.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestGame(t testing.TB, name, developer, producer, genre, platform, released string) Game {
	t.Helper()
	g, err := NewGame([]string{name, developer, producer, genre, platform, released})
	if err != nil {
		t.Fatalf("failed to create test game: %v", err)
	}
	return g
}

// TestGames returns a small fixed set of games covering several
// developers, producers, genres and platforms.
func TestGames(t testing.TB) []Game {
	t.Helper()
	return []Game{
		TestGame(t, "SimCity", "Maxis", "Brøderbund", "City-building", "Microsoft Windows", "February 2, 1989"),
		TestGame(t, "Doom", "id Software", "GT Interactive", "First-person shooter", "MS-DOS", "December 10, 1993"),
		TestGame(t, "Quake", "id Software", "GT Interactive", "First-person shooter", "Microsoft Windows", "June 22, 1996"),
		TestGame(t, "Half-Life", "Valve", "Sierra Entertainment", "First-person shooter", "Microsoft Windows", "November 19, 1998"),
		TestGame(t, "The Sims", "Maxis", "Electronic Arts", "Life simulation", "Microsoft Windows", "February 4, 2000"),
		TestGame(t, "SimCity 4", "Maxis", "Electronic Arts", "City-building", "Microsoft Windows", "January 14, 2003"),
		TestGame(t, "Spore", "Maxis", "Electronic Arts", "God game", "macOS", "September 7, 2008"),
	}
}

// TestCatalog creates a catalog holding TestGames.
func TestCatalog(t testing.TB) *Catalog {
	t.Helper()
	return New(TestGames(t)...)
}
