package models

type MetricCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Icon        string `json:"icon"`
	Change      string `json:"change,omitempty"`
	Description string `json:"description,omitempty"`
}

// ChartDataset mirrors a chart.js dataset. Color fields are either a single
// color or one color per data point (pie charts).
type ChartDataset struct {
	Label           string      `json:"label,omitempty"`
	Data            []float64   `json:"data"`
	BackgroundColor interface{} `json:"backgroundColor,omitempty"`
	BorderColor     string      `json:"borderColor,omitempty"`
	Fill            bool        `json:"fill,omitempty"`
	Tension         float64     `json:"tension,omitempty"`
}

type Chart struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"` // "bar", "line", "pie" or "area"
	Title    string         `json:"title"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type DashboardOverview struct {
	Title   string       `json:"title"`
	Metrics []MetricCard `json:"metrics"`
	Charts  []Chart      `json:"charts"`
}
