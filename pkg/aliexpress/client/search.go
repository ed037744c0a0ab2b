package client

type productQueryResponse struct {
	Wrapper struct {
		Result struct {
			Products         []RawProduct `json:"products"`
			TotalRecordCount int          `json:"total_record_count"`
			CurrentPageNo    int          `json:"current_page_no"`
			CurrentRecord    int          `json:"current_record_count"`
		} `json:"result"`
	} `json:"aliexpress_affiliate_product_query_response"`
}
