// Hex descriptions and encounters for the East-meets-West frontier setting.
// Both calls always return displayable text: a missing key or a failed call
// yields a fixed fallback string and a warning in the log.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/talgya/frontier-map/internal/world"
)

// Fallback strings shown instead of generated text.
const (
	DescriptionUnavailable = "AI description unavailable (Missing API Key)."
	DescriptionFailed      = "Failed to generate description from the oracle."
	DescriptionEmpty       = "No description generated."
	EncounterUnavailable   = "Encounter generation unavailable."
	EncounterFailed        = "The oracle is silent."
	EncounterEmpty         = "No encounter details."
)

// DefaultPartyLevel is used when a caller does not specify one.
const DefaultPartyLevel = 5

const settingPrompt = `You are a Pathfinder RPG Game Master helper for a unique setting.
The setting is a blend of the American Wild West and Ancient Western China (Silk Road / Wuxia).
Think: High steppes, red rock canyons, jade mountains, dusty trading posts, and spirits of the desert.
Do not use Markdown formatting. Keep it immersive.`

// Describer generates flavor text for hexes.
type Describer struct {
	client *Client
	log    *slog.Logger
}

// NewDescriber wraps client, which may be nil.
func NewDescriber(client *Client) *Describer {
	return &Describer{client: client, log: slog.With("component", "llm")}
}

// DescribeHex returns a short atmospheric description of a wilderness hex.
func (d *Describer) DescribeHex(ctx context.Context, terrain world.Terrain, element world.Element) string {
	if !d.client.Enabled() {
		d.log.Warn("describe hex skipped: API key not set")
		return DescriptionUnavailable
	}

	prompt := fmt.Sprintf(`Generate a concise, atmospheric description (max 3 sentences) for a wilderness hex.

Terrain: %s
Feature/Element: %s

If the element is "Feature", "Resource", or "Secret", invent a specific interesting detail fitting this "East meets West" frontier theme.
If "Difficult", describe the obstacle (e.g., flash floods, crumbling cliffside paths).
If "Hunting Ground", hint at a predator (e.g., giant vultures, dune worms, spirit wolves).`, terrain, element)

	text, err := d.client.Complete(ctx, settingPrompt, prompt, 250)
	if err != nil {
		d.log.Warn("describe hex failed", "terrain", terrain, "element", element, "error", err)
		return DescriptionFailed
	}
	if strings.TrimSpace(text) == "" {
		return DescriptionEmpty
	}
	return strings.TrimSpace(text)
}

// DescribeEncounter returns a brief random encounter for a party of the given level.
func (d *Describer) DescribeEncounter(ctx context.Context, terrain world.Terrain, partyLevel int) string {
	if !d.client.Enabled() {
		d.log.Warn("describe encounter skipped: API key not set")
		return EncounterUnavailable
	}
	if partyLevel <= 0 {
		partyLevel = DefaultPartyLevel
	}

	prompt := fmt.Sprintf(`Generate a random encounter for a party of level %d in a %s terrain.

Provide:
1. Name of creature(s) or hazard (Mix western tropes like Gunslingers/Bandits with Eastern tropes like Jiangshi/Spirit Beasts).
2. A one-sentence setup describing how the encounter begins.
Keep it brief.`, partyLevel, terrain)

	text, err := d.client.Complete(ctx, settingPrompt, prompt, 250)
	if err != nil {
		d.log.Warn("describe encounter failed", "terrain", terrain, "level", partyLevel, "error", err)
		return EncounterFailed
	}
	if strings.TrimSpace(text) == "" {
		return EncounterEmpty
	}
	return strings.TrimSpace(text)
}
