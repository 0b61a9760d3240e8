package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	advisorapi "finwise/pkg/api/advisor"
	configapi "finwise/pkg/api/config"
	libraryapi "finwise/pkg/api/library"
	"finwise/pkg/core/advisor"
	"finwise/pkg/core/agent"
	"finwise/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// An API credential for the active provider is a startup precondition:
	// fail once here rather than on every request.
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("DEEPSEEK_API_KEY") == "" {
		fmt.Println("[FATAL] No provider credential found: set GEMINI_API_KEY or DEEPSEEK_API_KEY")
		os.Exit(1)
	}

	// Initialize provider manager from config
	var agentCfg agent.Config
	configData, err := os.ReadFile("config/models.yaml")
	if err != nil {
		fmt.Printf("[WARNING] Failed to read config/models.yaml: %v\n", err)
		fmt.Println("  Falling back to gemini as active provider")
		agentCfg.ActiveProvider = "gemini"
	} else if err := yaml.Unmarshal(configData, &agentCfg); err != nil {
		fmt.Printf("[WARNING] Failed to parse config/models.yaml: %v\n", err)
		agentCfg.ActiveProvider = "gemini"
	}
	agentMgr := agent.NewManager(agentCfg)

	// Conversation history storage is optional: the advisory endpoints work
	// without a database, they just skip history.
	var history *store.ConversationRepo
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] History storage disabled: %v\n", err)
	} else {
		history = store.NewConversationRepo(store.GetPool())
		defer store.Close()
	}

	svc := advisor.NewService(agentMgr)

	// Config endpoints
	configHandler := configapi.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Advisory endpoints
	advisorHandler := advisorapi.NewHandler(svc, history)
	http.HandleFunc("/api/advisor/chat", advisorHandler.HandleChat)
	http.HandleFunc("/api/advisor/tax", advisorHandler.HandleTax)
	http.HandleFunc("/api/advisor/benefits", advisorHandler.HandleBenefits)
	http.HandleFunc("/api/advisor/dashboard", advisorHandler.HandleDashboard)
	http.HandleFunc("/api/advisor/reports", advisorHandler.HandleReports)
	http.HandleFunc("/api/advisor/history", advisorHandler.HandleHistory)

	// Wisdom library endpoints
	libraryHandler := libraryapi.NewHandler()
	http.HandleFunc("/api/library", libraryHandler.HandleLibrary)
	http.HandleFunc("/api/library/books", libraryHandler.HandleBooks)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - POST /api/advisor/chat")
	fmt.Println("  - POST /api/advisor/tax")
	fmt.Println("  - POST /api/advisor/benefits")
	fmt.Println("  - POST /api/advisor/dashboard")
	fmt.Println("  - POST /api/advisor/reports")
	fmt.Println("  - GET  /api/advisor/history")
	fmt.Println("  - POST /api/library")
	fmt.Println("  - GET  /api/library/books")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
