package models

type SensorType string

const (
	SensorTemperature  SensorType = "temperature"
	SensorHumidity     SensorType = "humidity"
	SensorSoilMoisture SensorType = "soil_moisture"
	SensorLight        SensorType = "light"
	SensorCO2          SensorType = "co2"
	SensorPH           SensorType = "ph"
)

type SensorStatus string

const (
	SensorActive      SensorStatus = "active"
	SensorCalibrating SensorStatus = "calibrating"
	SensorError       SensorStatus = "error"
	SensorOffline     SensorStatus = "offline"
)

type GreenhouseStatus string

const (
	GreenhouseActive      GreenhouseStatus = "active"
	GreenhouseMaintenance GreenhouseStatus = "maintenance"
	GreenhouseInactive    GreenhouseStatus = "inactive"
)

type ReadingQuality string

const (
	QualityGood    ReadingQuality = "good"
	QualityWarning ReadingQuality = "warning"
	QualityError   ReadingQuality = "error"
)

type ActivityType string

const (
	ActivityAIAnalysis      ActivityType = "ai_analysis"
	ActivityDiseaseDetected ActivityType = "disease_detected"
	ActivityIrrigation      ActivityType = "irrigation"
	ActivityHarvest         ActivityType = "harvest"
	ActivityMaintenance     ActivityType = "maintenance"
)

type ActivityStatus string

const (
	StatusSuccess ActivityStatus = "success"
	StatusWarning ActivityStatus = "warning"
	StatusInfo    ActivityStatus = "info"
	StatusError   ActivityStatus = "error"
)
