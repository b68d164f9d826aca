package models

// ============================================================================
// DASHBOARD VIEWS
// ============================================================================

// Field names mirror the feed the frontend already consumes; do not rename
// without updating the dashboard client.

type DashboardStats struct {
	TotalPlants   int `json:"totalPlants"`
	HealthyPlants int `json:"healthyPlants"`
	Diseased      int `json:"diseased"`
	WaterLevel    int `json:"waterLevel"`
}

type TrendPoint struct {
	Name     string `json:"name"`
	Healthy  int    `json:"healthy"`
	Diseased int    `json:"diseased"`
}

type ActivityView struct {
	ID     string         `json:"_id"`
	Time   string         `json:"time"`
	Action string         `json:"action"`
	Plant  string         `json:"plant"`
	Status ActivityStatus `json:"status"`
}

type DashboardView struct {
	Stats            DashboardStats `json:"stats"`
	ChartData        []TrendPoint   `json:"chartData"`
	RecentActivities []ActivityView `json:"recentActivities"`
}

type SensorWithLatest struct {
	Sensor     Sensor         `json:"sensor"`
	LatestData *SensorReading `json:"latestData"`
}

type GreenhouseView struct {
	Greenhouse    Greenhouse            `json:"greenhouse"`
	Sensors       []SensorWithLatest    `json:"sensors"`
	HealthHistory []PlantHealthSnapshot `json:"healthHistory"`
}
