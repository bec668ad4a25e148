// ABOUTME: Built-in seed content used when no saved state exists
// ABOUTME: First-run UX decision: new users start with anchors and allies, not blanks
package models

// DefaultAnchors returns the seed anchor set. Returned as a fresh slice so
// callers can mutate their copy freely.
func DefaultAnchors() []Anchor {
	return []Anchor{
		{
			ID:        "seed_anchor_01",
			Title:     "Open the curtains",
			Container: ContainerMorning,
			Category:  CategoryTime,
			BodyCue:   "Eyes adjusting to daylight",
			Micro:     "Pull one curtain aside",
			Desire:    "Begin the day in light",
		},
		{
			ID:        "seed_anchor_02",
			Title:     "Drink a glass of water",
			Container: ContainerMorning,
			Category:  CategoryTime,
			BodyCue:   "Dry mouth on waking",
			Micro:     "Fill the glass",
			Desire:    "Arrive in the body",
		},
		{
			ID:        "seed_anchor_03",
			Title:     "Step outside for a minute",
			Container: ContainerAfternoon,
			Category:  CategoryTime,
			BodyCue:   "Shoulders creeping toward ears",
			Micro:     "Stand at the door",
			Desire:    "Break the indoor trance",
		},
		{
			ID:        "seed_anchor_04",
			Title:     "Stretch between tasks",
			Container: ContainerAfternoon,
			Category:  CategorySituational,
			BodyCue:   "Stiffness after sitting",
			Micro:     "Reach both arms up",
			Desire:    "Stay loose through the slump",
		},
		{
			ID:        "seed_anchor_05",
			Title:     "Dim the lights",
			Container: ContainerEvening,
			Category:  CategoryTime,
			BodyCue:   "Eyes tired of glare",
			Micro:     "Switch off the overhead",
			Desire:    "Let the day soften",
		},
		{
			ID:        "seed_anchor_06",
			Title:     "Put the phone across the room",
			Container: ContainerLate,
			Category:  CategoryTime,
			BodyCue:   "Thumb hovering over the screen",
			Micro:     "Set it on the far shelf",
			Desire:    "Give sleep a fair chance",
		},
		{
			ID:        "seed_anchor_07",
			Title:     "Name one good thing",
			Container: ContainerLate,
			Category:  CategoryUplift,
			BodyCue:   "Mind replaying the day",
			Micro:     "Say it out loud",
			Desire:    "Close the day kindly",
		},
	}
}

// DefaultAllies returns the seed ally set.
func DefaultAllies() []Ally {
	return []Ally{
		{
			ID:         "seed_ally_01",
			Name:       "Coffee",
			Face:       "The morning herald",
			Invocation: "First cup, before words",
			Function:   "Lifts the fog, sharpens intent",
			Shadow:     "Jitters and a borrowed afternoon",
			Ritual:     "One cup, seated, nowhere else to be",
			Log:        []Moment{},
		},
		{
			ID:         "seed_ally_02",
			Name:       "Cannabis",
			Face:       "The evening softener",
			Invocation: "When the day refuses to end",
			Function:   "Loosens the grip, widens the room",
			Shadow:     "Days that blur into each other",
			Ritual:     "Evenings only, with intention named first",
			Log:        []Moment{},
		},
	}
}
