package services

import "supermind-backend/internal/models"

// AnalyticsService serves the dashboard's fixed engagement figures.
type AnalyticsService struct {
	metrics []models.MetricCard
	charts  []models.Chart
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		metrics: defaultMetrics(),
		charts:  defaultCharts(),
	}
}

func (s *AnalyticsService) Overview() models.DashboardOverview {
	return models.DashboardOverview{
		Title:   "Analytics Dashboard",
		Metrics: s.Metrics(),
		Charts:  s.Charts(),
	}
}

func (s *AnalyticsService) Metrics() []models.MetricCard {
	out := make([]models.MetricCard, len(s.metrics))
	copy(out, s.metrics)
	return out
}

func (s *AnalyticsService) Charts() []models.Chart {
	out := make([]models.Chart, 0, len(s.charts))
	for _, c := range s.charts {
		out = append(out, cloneChart(c))
	}
	return out
}

func (s *AnalyticsService) Chart(id string) (models.Chart, bool) {
	for _, c := range s.charts {
		if c.ID == id {
			return cloneChart(c), true
		}
	}
	return models.Chart{}, false
}

func cloneChart(c models.Chart) models.Chart {
	c.Labels = append([]string(nil), c.Labels...)
	datasets := make([]models.ChartDataset, len(c.Datasets))
	for i, d := range c.Datasets {
		d.Data = append([]float64(nil), d.Data...)
		if colors, ok := d.BackgroundColor.([]string); ok {
			d.BackgroundColor = append([]string(nil), colors...)
		}
		datasets[i] = d
	}
	c.Datasets = datasets
	return c
}

func defaultMetrics() []models.MetricCard {
	return []models.MetricCard{
		{ID: "engagement-rate", Title: "Average Engagement Rate", Value: "0.48%", Icon: "activity", Change: "+8%", Description: "Across all posts"},
		{ID: "likes", Title: "Average Likes", Value: "276", Icon: "bookmark", Change: "+15%", Description: "Per post"},
		{ID: "comments", Title: "Average Comments", Value: "54", Icon: "message-circle", Change: "+12%", Description: "Per post"},
		{ID: "saves", Title: "Average Saves", Value: "27", Icon: "bookmark", Change: "+5%", Description: "Per post"},
	}
}

const (
	purple     = "rgba(128, 90, 213, 1)"
	purpleFill = "rgba(128, 90, 213, 0.2)"
	green      = "rgba(67, 206, 162, 1)"
	greenFill  = "rgba(67, 206, 162, 0.2)"
	pink       = "rgba(244, 114, 182, 1)"
	pinkFill   = "rgba(244, 114, 182, 0.2)"
)

func defaultCharts() []models.Chart {
	return []models.Chart{
		{
			ID:     "post-type-comparison",
			Type:   "bar",
			Title:  "Post Type Comparison - Average engagement by post type",
			Labels: []string{"Reel", "Carousel", "Static"},
			Datasets: []models.ChartDataset{
				{Label: "Likes", Data: []float64{1500, 1200, 800}, BackgroundColor: "rgba(128, 90, 213, 0.8)"},
				{Label: "Comments", Data: []float64{300, 400, 250}, BackgroundColor: "rgba(244, 114, 182, 0.8)"},
				{Label: "Shares", Data: []float64{200, 300, 150}, BackgroundColor: "rgba(67, 206, 162, 0.8)"},
			},
		},
		{
			ID:     "daily-engagement",
			Type:   "line",
			Title:  "Post Performance Over Time - Daily engagement metrics",
			Labels: []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29", "2024-02-05"},
			Datasets: []models.ChartDataset{
				{Label: "Likes", Data: []float64{2000, 3000, 2500, 4000, 4500, 5000}, BorderColor: purple, BackgroundColor: purpleFill, Fill: true, Tension: 0.4},
				{Label: "Shares", Data: []float64{500, 700, 600, 800, 1000, 1200}, BorderColor: green, BackgroundColor: greenFill, Fill: true, Tension: 0.4},
				{Label: "Comments", Data: []float64{300, 400, 350, 450, 500, 600}, BorderColor: pink, BackgroundColor: pinkFill, Fill: true, Tension: 0.4},
			},
		},
		{
			ID:     "post-distribution",
			Type:   "pie",
			Title:  "Post Distribution",
			Labels: []string{"Organic", "Viral", "Paid"},
			Datasets: []models.ChartDataset{
				{Data: []float64{45, 25, 30}, BackgroundColor: []string{"#805AD5", "#FF6361", "#FFA600"}},
			},
		},
		{
			ID:     "engagement-trends",
			Type:   "area",
			Title:  "Engagement Trends Over Time",
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Datasets: []models.ChartDataset{
				{Label: "Likes", Data: []float64{2000, 3000, 2500, 4000, 4500, 5000}, BorderColor: purple, BackgroundColor: purpleFill, Fill: true, Tension: 0.4},
				{Label: "Shares", Data: []float64{500, 700, 600, 800, 1000, 1200}, BorderColor: green, BackgroundColor: greenFill, Fill: true, Tension: 0.4},
			},
		},
	}
}
