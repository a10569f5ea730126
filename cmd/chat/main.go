// cmd/chat/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hazaldoster/beautybot/internal/config"
	"github.com/hazaldoster/beautybot/internal/i18n"
	"github.com/hazaldoster/beautybot/internal/llm"
	"github.com/hazaldoster/beautybot/internal/services"
)

// ANSI color codes
const (
	colorBlue   = "\033[94m"
	colorCyan   = "\033[96m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorReset  = "\033[0m"
)

var banner = colorBold + colorCyan + `
╔══════════════════════════════════════════════════════════════╗
║                                                              ║
║       Trendyol BeautyBot - Güzellik Ürünleri Analiz Chatbot  ║
║                                                              ║
║   Trendyol güzellik ürünleri veritabanından anlamlı          ║
║   çıkarımlar yapan akıllı asistanınız.                       ║
║                                                              ║
╚══════════════════════════════════════════════════════════════╝
` + colorReset

var helpText = `
` + colorYellow + `Komutlar:` + colorReset + `
  ` + colorGreen + `/stats` + colorReset + `    - Hızlı istatistikleri göster (LLM kullanmadan)
  ` + colorGreen + `/reset` + colorReset + `    - Konuşmayı sıfırla
  ` + colorGreen + `/help` + colorReset + `     - Bu yardım mesajını göster
  ` + colorGreen + `/quit` + colorReset + `     - Chatbot'tan çık

` + colorYellow + `Örnek sorular:` + colorReset + `
  - En çok yorum alan ürünler hangileri?
  - Kaş maskarası kategorisinde en iyi ürün hangisi?
  - En iyi fiyat/performans ürünlerini öner
  - Hangi ürünler tartışmalı yorumlara sahip?
  - Ruj kategorisinin genel analizi nedir?
  - Trend olan ürünler hangileri?
  - 100 TL altında iyi puanlı ürünler var mı?
`

func main() {
	log := logrus.New()
	log.SetOutput(io.Discard)

	fmt.Println(banner)
	fmt.Println(colorDim + "Veriler yükleniyor ve analiz ediliyor..." + colorReset)

	cfg, err := config.Load()
	if err != nil {
		fatalf("Hata: %v", err)
	}
	if err := i18n.Initialize(); err != nil {
		fatalf("Başlatma hatası: %v", err)
	}

	analysisService, err := services.NewAnalysisService(cfg.Data.CSVPath, cfg.I18n.Locale, log)
	if err != nil {
		fatalf("Hata: %v", err)
	}

	client, err := llm.NewGeminiClient(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     time.Duration(cfg.LLM.Timeout) * time.Second,
	})
	if err != nil {
		fatalf("Hata: %v", err)
	}

	chatbot := services.NewChatService(analysisService, client, log)
	status, err := chatbot.Initialize()
	if err != nil {
		fatalf("Başlatma hatası: %v", err)
	}
	fmt.Println(colorGreen + "✓ " + status + colorReset)
	fmt.Println(colorDim + "Gemini LLM bağlamı hazırlandı." + colorReset)

	fmt.Println(helpText)
	fmt.Println(colorCyan + "Merhaba! Ben Trendyol BeautyBot. Güzellik ürünleri hakkında her şeyi sorabilirsiniz." + colorReset)
	fmt.Println()

	runLoop(chatbot)
}

func runLoop(chatbot *services.ChatService) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(colorBold + colorBlue + "Sen > " + colorReset)
		if !scanner.Scan() {
			fmt.Println("\n" + colorDim + "Görüşmek üzere!" + colorReset)
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := handleCommand(chatbot, strings.ToLower(input)); quit {
				return
			}
			continue
		}

		fmt.Print("\n" + colorBold + colorCyan + "Trendyol BeautyBot > " + colorReset)
		err := chatbot.ChatStream(context.Background(), input, func(chunk string) error {
			fmt.Print(chunk)
			return nil
		})
		if err != nil {
			fmt.Printf("\n%sYanıt alınırken hata oluştu: %v%s\n\n", colorRed, err, colorReset)
			continue
		}
		fmt.Print("\n\n")
	}
}

// handleCommand runs one slash command; it reports whether the loop should
// exit.
func handleCommand(chatbot *services.ChatService, command string) bool {
	switch command {
	case "/quit", "/exit", "/q":
		fmt.Println(colorDim + "Görüşmek üzere! İyi günler dilerim." + colorReset)
		return true

	case "/help":
		fmt.Println(helpText)

	case "/stats":
		stats, err := chatbot.QuickStats()
		if err != nil {
			fmt.Printf("%sHata: %v%s\n", colorRed, err, colorReset)
			break
		}
		fmt.Println("\n" + colorYellow + "📊 Hızlı İstatistikler:" + colorReset)
		fmt.Println(stats)
		fmt.Println()

	case "/reset":
		chatbot.ResetConversation()
		fmt.Print(colorGreen + "✓ Konuşma sıfırlandı." + colorReset + "\n\n")

	default:
		fmt.Print(colorRed + "Bilinmeyen komut. /help yazarak komutları görebilirsiniz." + colorReset + "\n\n")
	}
	return false
}

func fatalf(format string, args ...interface{}) {
	fmt.Printf(colorRed+format+colorReset+"\n", args...)
	os.Exit(1)
}
