package services

import (
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect/model"
)

// Advice categories, in match priority order
const (
	CategoryResume     = "resume"
	CategoryInterview  = "interview"
	CategorySkills     = "skills"
	CategoryInternship = "internship"
	CategoryTier       = "tier23"
)

// chatKnowledge is the static advice table. The responder serves the first
// three tips of the matched category.
var chatKnowledge = map[string][]string{
	CategoryResume: {
		"Keep your resume concise - ideally 1-2 pages",
		"Use action verbs like 'developed', 'implemented', 'achieved'",
		"Quantify your achievements with numbers where possible",
		"Tailor your resume to each job description",
		"Include relevant projects and internships",
		"Use a clean, professional format",
		"Proofread multiple times for errors",
		"Include your technical skills prominently",
	},
	CategoryInterview: {
		"Research the company thoroughly before the interview",
		"Practice common interview questions out loud",
		"Prepare examples using the STAR method (Situation, Task, Action, Result)",
		"Ask thoughtful questions to the interviewer",
		"Dress professionally even for video interviews",
		"Test your technology beforehand for remote interviews",
		"Be authentic and honest about your skills",
		"Follow up with a thank you email within 24 hours",
	},
	CategorySkills: {
		"Focus on in-demand skills like Python, JavaScript, React, Node.js",
		"Build personal projects to demonstrate your skills",
		"Contribute to open-source projects",
		"Practice coding problems on platforms like LeetCode",
		"Learn cloud platforms like AWS or Azure",
		"Understand database fundamentals",
		"Develop soft skills like communication and teamwork",
		"Stay updated with industry trends",
	},
	CategoryInternship: {
		"Start applying early - 2-3 months before you want to start",
		"Apply to 10-15 internships for best results",
		"Network with alumni and professionals",
		"Attend career fairs and company events",
		"Use your college career center resources",
		"Follow up on applications after 1-2 weeks",
		"Don't get discouraged by rejections",
		"Learn from each interview experience",
	},
	CategoryTier: {
		"Your skills matter more than your college tier",
		"Many companies actively seek diverse talent from all colleges",
		"Build a strong portfolio of projects",
		"Get certifications to validate your skills",
		"Participate in hackathons and coding competitions",
		"Leverage LinkedIn to connect with professionals",
		"Consider starting with smaller companies for experience",
		"Remote opportunities have opened more doors",
	},
}

// categoryKeywords pairs each category with its trigger substrings. Order
// matters: the first matching category wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryResume, []string{"resume", "cv", "curriculum"}},
	{CategoryInterview, []string{"interview", "interviewing", "question"}},
	{CategorySkills, []string{"skill", "learn", "technology", "programming", "coding"}},
	{CategoryInternship, []string{"internship", "apply", "application", "job"}},
	{CategoryTier, []string{"tier", "college", "location", "college tier"}},
}

const genericMenu = "I'm here to help you with your career journey! You can ask me about:\n\n" +
	"• Resume writing tips\n" +
	"• Interview preparation\n" +
	"• Skill development\n" +
	"• Internship advice\n" +
	"• Tips for Tier-2 and Tier-3 college students\n\n" +
	"What would you like to know more about?"

// MatchCategory returns the advice category triggered by the message, or ""
// when nothing matches. Matching is case-insensitive substring containment.
func MatchCategory(message string) string {
	lower := strings.ToLower(message)

	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return ""
}

// Respond maps a free-text message to a canned advice string. Pure function:
// the same input always produces the same output, and an empty or unmatched
// input yields the generic menu. The matched category is returned alongside
// so callers can tag the transcript.
func Respond(message string) (reply string, category string) {
	category = MatchCategory(message)
	if category == "" {
		return genericMenu, ""
	}

	tips := chatKnowledge[category]
	selected := tips
	if len(tips) > 3 {
		selected = tips[:3]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your question about %s, here are some tips:\n\n", category)
	for i, tip := range selected {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + tip)
	}
	b.WriteString("\n\nIs there anything specific you'd like to know more about?")

	return b.String(), category
}

// ChatService persists chat transcripts for authenticated users
type ChatService struct {
	db *gorm.DB
}

// NewChatService creates a new chat service
func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// RecordExchange appends the inbound message and the assistant's reply as two
// ordered transcript rows for the user.
func (s *ChatService) RecordExchange(userID, message, reply, category string) error {
	rows := []model.ChatMessage{
		{UserID: userID, Message: message, IsUser: true, Context: category},
		{UserID: userID, Message: reply, IsUser: false, Context: category, Metadata: exchangeMetadata(category)},
	}

	for i := range rows {
		if err := s.db.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// History returns a user's transcript, oldest first.
func (s *ChatService) History(userID string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func exchangeMetadata(category string) datatypes.JSON {
	if category == "" {
		return datatypes.JSON(`{"matched":false}`)
	}
	return datatypes.JSON(fmt.Sprintf(`{"matched":true,"category":%q}`, category))
}
