package notify

import (
	"context"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

// TelegramNotifier sends each sale event as a direct message to the
// configured chat.
type TelegramNotifier struct {
	bot  *tele.Bot
	chat tele.ChatID
}

func NewTelegramNotifier(bot *tele.Bot, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chat: tele.ChatID(chatID)}
}

func (n *TelegramNotifier) NotifySale(ctx context.Context, sale domain.SaleRecorded) error {
	seller := sale.Seller
	if seller == "" {
		seller = "неизвестный пользователь"
	}
	msg := fmt.Sprintf(
		"💰 *Продажа зарегистрирована*\n\n"+
			"👤 Продавец: %s\n"+
			"📦 Товар: %s\n"+
			"🏢 Склад: %s\n"+
			"📊 Осталось в наличии: %d шт.",
		seller, sale.Product, warehouseTitle(sale.Warehouse), sale.Remaining,
	)
	_, err := n.bot.Send(n.chat, msg, tele.ModeMarkdown)
	return err
}

func warehouseTitle(w domain.Warehouse) string {
	switch w {
	case domain.WarehouseCity:
		return "Город"
	case domain.WarehouseTalovka:
		return "Таловка"
	default:
		return string(w)
	}
}
