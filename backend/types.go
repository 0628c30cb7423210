package backend

import "encoding/json"

// Player is a saved character. The server has shipped two generations of
// field names for world/industry/cash, so decoding accepts both.
type Player struct {
	ID       int     `json:"player_id"`
	Name     string  `json:"player_name"`
	World    string  `json:"-"`
	Industry string  `json:"-"`
	Cash     float64 `json:"-"`
}

func (p *Player) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           int      `json:"player_id"`
		Name         string   `json:"player_name"`
		ChosenWorld  string   `json:"chosen_world"`
		World        string   `json:"world"`
		ChosenIndust string   `json:"chosen_industry"`
		Industry     string   `json:"industry"`
		TotalCash    *float64 `json:"total_cash"`
		Cash         *float64 `json:"cash"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	p.Name = raw.Name
	p.World = firstNonEmpty(raw.ChosenWorld, raw.World)
	p.Industry = firstNonEmpty(raw.ChosenIndust, raw.Industry)
	switch {
	case raw.TotalCash != nil:
		p.Cash = *raw.TotalCash
	case raw.Cash != nil:
		p.Cash = *raw.Cash
	}
	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// Stats is the resource-counter snapshot shown on the HUD. The stats payload
// itself is opaque business-simulation data; the engine only surfaces it.
type Stats struct {
	Stats  json.RawMessage `json:"stats"`
	Energy struct {
		Current float64 `json:"current_energy"`
	} `json:"energy"`
	Resources struct {
		Morale        float64 `json:"morale"`
		BrandEquity   float64 `json:"brand_equity"`
		FiscalQuarter int     `json:"fiscal_quarter"`
	} `json:"resources"`
}

// ScenarioRef identifies one encounter in a discipline listing.
type ScenarioRef struct {
	ID        string `json:"scenario_id"`
	Completed bool   `json:"is_completed"`
}

// Scenario is one quiz encounter: a prompt plus keyed textual choices.
type Scenario struct {
	ID      string            `json:"scenario_id"`
	Text    string            `json:"scenario_text"`
	Choices map[string]Choice `json:"choices"`
}

// Choice decodes from either a bare string or an object with a text field;
// the content authoring has used both shapes.
type Choice struct {
	Text string
}

func (c *Choice) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Text = s
		return nil
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Text = obj.Text
	return nil
}

// ChooseResult is the scored outcome of an answer submission.
type ChooseResult struct {
	Success    bool    `json:"success"`
	Feedback   string  `json:"feedback"`
	ExpGained  float64 `json:"exp_gained"`
	CashChange float64 `json:"cash_change"`
}
