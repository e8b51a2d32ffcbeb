package dto

type RequestResponse struct {
	Name        string `json:"name"`
	Current     [3]int `json:"current"`
	Destination [3]int `json:"destination"`
}

type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
}
