package worldmap

import (
	"venturequest/sprite"
	"venturequest/tile"
)

func hub() *Descriptor {
	rows := []string{
		"TTTTTTTTTTTTTTTTTTTTTT",
		"T....................T",
		"T..####....####......T",
		"T..#ww#....#ww#......T",
		"T..#ww#....#ww#..TT..T",
		"T..#wD#....#wD#..TT..T",
		"T...==......==.......T",
		"T...==========...!...T",
		"T...==......==.......T",
		"T...==......==~~~~...T",
		"T...==......==~~~~...T",
		"T...==......==.......T",
		"T....................T",
		"T.........==.........T",
		"TTTTTTTTTTDTTTTTTTTTTT",
	}
	tiles, collision := parseGrid(rows)
	d := &Descriptor{
		ID:        Hub,
		Name:      "Founders' Hub",
		Width:     len(rows[0]),
		Height:    len(rows),
		Tiles:     tiles,
		collision: collision,
		Spawn:     Coord{Row: 7, Col: 8},
		Overlay: map[Coord]tile.ID{
			{Row: 2, Col: 4}: tile.Sign,
		},
		NPCs: []NPC{
			{
				Name:      "Marta",
				Tile:      Coord{Row: 6, Col: 6},
				Archetype: sprite.Merchant,
				Variant:   1,
				Facing:    sprite.FacingDown,
				Behavior: Talk{
					Script: []string{
						"Welcome to the hub, founder!",
						"The market row is through the west door.",
						"Come see me when you have stock to move.",
					},
					Then: &ActionRef{Tag: "scenario", Route: "marketing"},
				},
			},
			{
				Name:      "Keeper Oswin",
				Tile:      Coord{Row: 8, Col: 15},
				Archetype: sprite.Elder,
				Variant:   4,
				Facing:    sprite.FacingLeft,
				Behavior: Talk{
					Script: []string{
						"Every venture starts with one ledger line.",
						"Mind your cash, and your cash minds you.",
					},
				},
			},
			{
				Name:      "Courier Fenn",
				Tile:      Coord{Row: 12, Col: 5},
				Archetype: sprite.Scout,
				Variant:   2,
				Facing:    sprite.FacingRight,
				Behavior: Patrol{
					Loop: []Coord{
						{Row: 12, Col: 5},
						{Row: 12, Col: 9},
						{Row: 11, Col: 9},
						{Row: 11, Col: 5},
					},
					StepEveryMs: 900,
					Talk: &Talk{
						Script: []string{"No time to chat, parcels to run!"},
					},
				},
			},
			{
				Name:      "Broker Hale",
				Tile:      Coord{Row: 2, Col: 17},
				Archetype: sprite.Noble,
				Variant:   3,
				Facing:    sprite.FacingDown,
				Behavior:  Act{ActionRef{Tag: "scenario", Route: "finance"}},
			},
		},
		Interactables: []Interactable{
			{
				Tile:   Coord{Row: 7, Col: 17},
				Script: []string{"NOTICE: Market Row open sunup to sundown.", "Iron Basin shuttle departs from the south gate."},
			},
		},
		Transitions: []Transition{
			{At: Coord{Row: 5, Col: 5}, To: MarketRow, Spawn: Coord{Row: 12, Col: 4}},
			{At: Coord{Row: 5, Col: 13}, To: Archive, Spawn: Coord{Row: 10, Col: 5}},
			{At: Coord{Row: 14, Col: 10}, To: IronBasin, Spawn: Coord{Row: 1, Col: 10}},
		},
	}
	return d
}

func ironBasin() *Descriptor {
	rows := []string{
		"##########D###########",
		"#ssssssssssssssssssss#",
		"#ss##ss##ss##ss##ss~~#",
		"#ssssssssssssssssss~~#",
		"#ss==============ss~~#",
		"#ss==ssssssssss==ssss#",
		"#ss==ss#CCCC#ss==ssss#",
		"#ss==ssDssssssss==sss#",
		"#ss==============sss!#",
		"#ssssssssssssssssssss#",
		"######################",
	}
	tiles, collision := parseGrid(rows)
	d := &Descriptor{
		ID:        IronBasin,
		Name:      "Iron Basin Works",
		Width:     len(rows[0]),
		Height:    len(rows),
		Tiles:     tiles,
		collision: collision,
		Spawn:     Coord{Row: 3, Col: 10},
		NPCs: []NPC{
			{
				Name:      "Foreman Brack",
				Tile:      Coord{Row: 5, Col: 8},
				Archetype: sprite.Artisan,
				Variant:   0,
				Facing:    sprite.FacingDown,
				Behavior: Talk{
					Script: []string{
						"The basin never sleeps, and neither do margins.",
						"Prove you can run a floor shift.",
					},
					Then: &ActionRef{Tag: "scenario", Route: "operations"},
				},
			},
			{
				Name:      "Quartermaster Ivo",
				Tile:      Coord{Row: 7, Col: 14},
				Archetype: sprite.Warrior,
				Variant:   2,
				Facing:    sprite.FacingLeft,
				Behavior:  Act{ActionRef{Tag: "scenario", Route: "operations"}},
			},
		},
		Interactables: []Interactable{
			{
				Tile:   Coord{Row: 8, Col: 20},
				Script: []string{"SAFETY FIRST: hard hats beyond this point."},
			},
		},
		Transitions: []Transition{
			{At: Coord{Row: 0, Col: 10}, To: Hub, Spawn: Coord{Row: 13, Col: 10}},
		},
	}
	return d
}

func marketRow() *Descriptor {
	rows := []string{
		"###############",
		"#wwwwwwwwwwwww#",
		"#wCCCw...wCCCw#",
		"#wwwww...wwwww#",
		"#w...w...w...w#",
		"#w...=====...w#",
		"#wSSww...wwSSw#",
		"#wwwww...wwwww#",
		"#w...w...w...w#",
		"#w...=====...w#",
		"#wwwwww=wwwwww#",
		"#wwwwww=wwwwww#",
		"#wwwwwwDwwwwww#",
		"###############",
	}
	tiles, collision := parseGrid(rows)
	d := &Descriptor{
		ID:        MarketRow,
		Name:      "Market Row",
		Width:     len(rows[0]),
		Height:    len(rows),
		Tiles:     tiles,
		collision: collision,
		Spawn:     Coord{Row: 11, Col: 7},
		NPCs: []NPC{
			{
				Name:      "Stallkeeper Runa",
				Tile:      Coord{Row: 3, Col: 3},
				Archetype: sprite.Merchant,
				Variant:   3,
				Facing:    sprite.FacingDown,
				Behavior: Talk{
					Script: []string{
						"Fresh stock, fair prices!",
						"Well. Prices, anyway.",
					},
				},
			},
			{
				Name:      "Appraiser Sel",
				Tile:      Coord{Row: 3, Col: 11},
				Archetype: sprite.Mystic,
				Variant:   5,
				Facing:    sprite.FacingDown,
				Behavior:  Act{ActionRef{Tag: "scenario", Route: "marketing"}},
			},
		},
		Transitions: []Transition{
			{At: Coord{Row: 12, Col: 7}, To: Hub, Spawn: Coord{Row: 6, Col: 5}},
		},
	}
	return d
}

func archive() *Descriptor {
	rows := []string{
		"############",
		"#ssssssssss#",
		"#sSSSSSSSSs#",
		"#ssssssssss#",
		"#sccccccccs#",
		"#sccccccccs#",
		"#ssssssssss#",
		"#sSSssssSSs#",
		"#ssssssssss#",
		"#ssssssssss#",
		"#sssssDssss#",
		"############",
	}
	tiles, collision := parseGrid(rows)
	d := &Descriptor{
		ID:        Archive,
		Name:      "The Archive",
		Width:     len(rows[0]),
		Height:    len(rows),
		Tiles:     tiles,
		collision: collision,
		Spawn:     Coord{Row: 9, Col: 6},
		NPCs: []NPC{
			{
				Name:      "Archivist Lune",
				Tile:      Coord{Row: 3, Col: 5},
				Archetype: sprite.Scholar,
				Variant:   2,
				Facing:    sprite.FacingDown,
				Behavior: Talk{
					Script: []string{
						"Shh. The ledgers are resting.",
						"Every failed venture here has a lesson in it.",
						"Care to study one?",
					},
					Then: &ActionRef{Tag: "scenario", Route: "strategy"},
				},
			},
		},
		Interactables: []Interactable{
			{
				Tile:   Coord{Row: 4, Col: 2},
				Script: []string{"Shelf Q3: 'Quarterly Collapses, Vol. IX'."},
			},
		},
		Transitions: []Transition{
			{At: Coord{Row: 10, Col: 6}, To: Hub, Spawn: Coord{Row: 6, Col: 13}},
		},
	}
	return d
}
