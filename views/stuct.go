package views

type UserController struct {
}

// Response is the common JSON envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// columns the unique-value endpoint is allowed to read
var uniqueValueColumns = []string{
	"coach_no",
	"coach_code",
	"schedule",
	"division",
	"secondary_suspension_type",
	"type_of_spring",
	"colour_of_spring",
	"type_of_failure",
	"location",
	"location_in_bogie",
}
