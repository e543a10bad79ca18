package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// Producer Topics
	TopicSearchClick = "search.click"
)
