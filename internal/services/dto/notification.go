package dto

// InquiryNotification - данные письма риелтору о новом запросе
type InquiryNotification struct {
	RealtorName  string
	RealtorEmail string
	BuyerName    string
	BuyerEmail   string
	BuyerPhone   string
	Address      string
	City         string
	Message      string
}
