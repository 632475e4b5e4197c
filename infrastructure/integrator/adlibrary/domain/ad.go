package domain

// AdRecord é o registro bruto devolvido pela API da biblioteca de anúncios.
type AdRecord struct {
	PageName      string `json:"page_name"`
	LinkURL       string `json:"link_url"`
	CreativeBody  string `json:"ad_creative_body"`
	CTAText       string `json:"cta_text"`
	AdSnapshotURL string `json:"ad_snapshot_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
}

// Paging segue o cursor de paginação da API.
type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next"`
}
