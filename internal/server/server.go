package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/faqdesk/faqmatch/internal/catalog"
	"github.com/faqdesk/faqmatch/internal/langdetect"
	"github.com/faqdesk/faqmatch/internal/match"
)

// fallbackResponses is the per-language "not understood" reply used
// when no catalog entry clears the confidence threshold.
var fallbackResponses = map[string]string{
	"en": "I'm not sure how to answer that. Try rephrasing your question.",
	"hi": "मुझे इसका उत्तर नहीं पता। कृपया अपना प्रश्न दूसरे शब्दों में पूछें।",
	"id": "Saya tidak yakin bagaimana menjawabnya. Coba ulangi pertanyaan Anda.",
}

var farewells = map[string]string{
	"en": "Goodbye!",
	"hi": "अलविदा!",
	"id": "Sampai jumpa!",
}

type Server struct {
	Catalog *catalog.Catalog
	Matcher *match.Matcher
	Log     zerolog.Logger
}

func New(cat *catalog.Catalog, m *match.Matcher, logger zerolog.Logger) *Server {
	return &Server{
		Catalog: cat,
		Matcher: m,
		Log:     logger,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.POST("/chat", s.Chat)
	r.POST("/match", s.Match)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "entries": s.Catalog.Len()})
}

type ChatRequest struct {
	Message string `json:"message"`
}

// Chat is the conversational endpoint: greetings and exit phrases get
// canned replies, everything else goes through language detection and
// the matcher, with a per-language fallback on a miss.
func (s *Server) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	requestID := uuid.New().String()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusOK, gin.H{"response": "Please enter a question."})
		return
	}

	lower := strings.ToLower(message)
	if lower == "exit" || lower == "quit" {
		c.JSON(http.StatusOK, gin.H{"response": farewells["en"]})
		return
	}

	if _, response, ok := langdetect.Greeting(message); ok {
		c.JSON(http.StatusOK, gin.H{"response": response})
		return
	}

	lang := langdetect.Detect(message)
	result := s.Matcher.Match(message, lang)

	if result.Status == match.StatusMatched {
		s.Log.Info().
			Str("request_id", requestID).
			Str("lang", lang).
			Str("entry_id", result.EntryID).
			Float64("score", result.Score).
			Msg("matched")
		c.JSON(http.StatusOK, gin.H{"response": result.Answer})
		return
	}

	// Low-severity log of misses feeds knowledge-base gap analysis.
	s.Log.Debug().
		Str("request_id", requestID).
		Str("lang", lang).
		Str("reason", result.Reason).
		Float64("score", result.Score).
		Str("query", message).
		Msg("no match")

	fallback, ok := fallbackResponses[lang]
	if !ok {
		fallback = fallbackResponses[langdetect.DefaultLang]
	}
	c.JSON(http.StatusOK, gin.H{"response": fallback})
}

type MatchRequest struct {
	Query string `json:"query"`
	Lang  string `json:"lang"`
}

// Match is the machine interface: it returns the raw match result
// instead of chat prose. Language is detected when not supplied.
func (s *Server) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	lang := req.Lang
	if lang == "" {
		lang = langdetect.Detect(req.Query)
	}

	result := s.Matcher.Match(req.Query, lang)
	c.JSON(http.StatusOK, result)
}
