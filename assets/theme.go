// Package assets holds the glyphs and creature tables used by the sandbox.
package assets

// Emoji constants used as entity and terrain glyphs.
const (
	GlyphPlayer      = "🧍"
	GlyphZombie      = "🧟"
	GlyphSoldier     = "💂"
	GlyphDog         = "🐕"
	GlyphTurret      = "🤖"
	GlyphHulk        = "🦍"
	GlyphRat         = "🐀"
	GlyphAnomaly     = "👾"
	GlyphWall        = "🧱"
	GlyphDoor        = "🚪"
	GlyphWindow      = "🪟"
	GlyphRubble      = "🪨"
	GlyphStairsDown  = "🔽"
	GlyphStairsUp    = "🔼"
	GlyphCar         = "🚗"
	GlyphFire        = "🔥"
	GlyphSmoke       = "💨"
	GlyphBlood       = "🩸"
	GlyphGas         = "☢️"
	GlyphPortal      = "🌀"
	GlyphGoo         = "🟢"
	GlyphBlastFront  = "💥"
	GlyphShapeTarget = "🎯"
	GlyphGenericItem = "📦"
)
