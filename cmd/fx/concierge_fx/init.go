package conciergefx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"venuehub/internal/api/controllers"
	"venuehub/internal/services"
	"venuehub/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	provideConciergeService,
	controllers.NewChatController)

// ProvideChatClient builds the chat completion client. A missing API key
// is tolerated at startup: the concierge then answers with canned replies
// until one is configured.
func ProvideChatClient() utils.ChatClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, concierge replies will be canned")
	}

	model := os.Getenv("OPENAI_MODEL")
	baseURL := os.Getenv("OPENAI_BASE_URL")
	return utils.NewOpenAIChatClient(apiKey, model, baseURL)
}

func provideConciergeService(
	hybridService services.HybridSearchServiceInterface,
	chatClient utils.ChatClientInterface,
) services.ConciergeServiceInterface {
	return services.NewConciergeService(hybridService, chatClient)
}
