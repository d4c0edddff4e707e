package api

// PassReq is the body of POST /passes.
type PassReq struct {
	Code string `json:"code"`
}

// BatchReq is the body of POST /passes/batch.
type BatchReq struct {
	Codes       []string `json:"codes"`
	SkipInvalid bool     `json:"skipInvalid"`
}

// Pass is a decoded, stored boarding pass.
type Pass struct {
	Id     string `json:"id"`
	Code   string `json:"code"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	SeatId int    `json:"seatId"`
}

// Seat is a seat id with its coordinates.
type Seat struct {
	SeatId int `json:"seatId"`
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Rejection describes a code that failed to decode in a batch.
type Rejection struct {
	Line  int    `json:"line"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

// BatchResp is the response of POST /passes/batch.
type BatchResp struct {
	Stored        int         `json:"stored"`
	Passes        []Pass      `json:"passes"`
	Rejected      []Rejection `json:"rejected"`
	HighestSeatId *int        `json:"highestSeatId,omitempty"`
}

func toPass(p StoredPass) Pass {
	return Pass{
		Id:     p.ID,
		Code:   p.Code,
		Row:    p.Row,
		Column: p.Col,
		SeatId: p.SeatID,
	}
}
