package usecase

// DelayMessage is exported for testing
var DelayMessage = delayMessage

// BuildForecastBlocks is exported for testing
var BuildForecastBlocks = buildForecastBlocks

// BuildTrainBlocks is exported for testing
var BuildTrainBlocks = buildTrainBlocks

// BuildAttendanceModal is exported for testing
var BuildAttendanceModal = buildAttendanceModal

// Modal texts exported for testing
const (
	ModalTitle            = modalTitle
	MsgWeatherUnavailable = msgWeatherUnavailable
	MsgTrainUnavailable   = msgTrainUnavailable
)
