package request

type CreateCourtRequest struct {
	Name      string `json:"name" binding:"required"`
	OpenHour  int    `json:"open_hour" binding:"min=0,max=23"`
	CloseHour int    `json:"close_hour" binding:"required,min=1,max=24"`
}

type CreateRuleRequest struct {
	StartDay  int   `json:"start_day" binding:"min=0,max=6"`
	EndDay    int   `json:"end_day" binding:"min=0,max=6"`
	StartHour int   `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int   `json:"end_hour" binding:"required,min=1,max=24"`
	Rate      int64 `json:"rate" binding:"min=0"`
}
