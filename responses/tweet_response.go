package responses

import "Chirp/models"

type FeedTweetResponse struct {
	Username  string `json:"username"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type TweetSummaryResponse struct {
	Body       string `json:"body"`
	LikeCount  int    `json:"like_count"`
	ReplyCount int    `json:"reply_count"`
	CreatedAt  string `json:"created_at"`
}

type NameResponse struct {
	Name string `json:"name"`
}

type LikesResponse struct {
	Likes []string `json:"likes"`
}

type ReplyResponse struct {
	Name  string `json:"name"`
	Reply string `json:"reply"`
}

type RepliesResponse struct {
	Replies []ReplyResponse `json:"replies"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func FeedToResponse(items []models.FeedItem) []FeedTweetResponse {
	out := make([]FeedTweetResponse, len(items))
	for i, item := range items {
		out[i] = FeedTweetResponse{
			Username:  item.Username,
			Body:      item.Body,
			CreatedAt: item.CreatedAt.UTC().Format(models.TimeLayout),
		}
	}
	return out
}

func SummaryToResponse(s models.TweetSummary) TweetSummaryResponse {
	return TweetSummaryResponse{
		Body:       s.Body,
		LikeCount:  s.LikeCount,
		ReplyCount: s.ReplyCount,
		CreatedAt:  s.CreatedAt.UTC().Format(models.TimeLayout),
	}
}

func SummariesToResponse(summaries []models.TweetSummary) []TweetSummaryResponse {
	out := make([]TweetSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = SummaryToResponse(s)
	}
	return out
}

func NamesToResponse(names []string) []NameResponse {
	out := make([]NameResponse, len(names))
	for i, name := range names {
		out[i] = NameResponse{Name: name}
	}
	return out
}

func RepliesToResponse(rows []models.ReplyRow) RepliesResponse {
	replies := make([]ReplyResponse, len(rows))
	for i, row := range rows {
		replies[i] = ReplyResponse{Name: row.Name, Reply: row.Reply}
	}
	return RepliesResponse{Replies: replies}
}
