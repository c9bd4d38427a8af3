package i18n

var messages = map[string]map[string]string{
	"en": {
		"support.title":        "🆘 Customer Support",
		"support.how_can_help": "How can we help you today?",
		"support.menu.create":  "📝 Create Ticket",
		"support.menu.my":      "📋 My Tickets (%d)",
		"support.menu.faq":     "❓ FAQ",
		"support.menu.human":   "👤 Human Agent",
		"support.menu.back":    "🔙 Back",

		"support.auto.greeting":     "👋 Hello! Welcome to our support!\n\nHow can I help you today?\n\nQuick help:\n• 📦 Order issues\n• 💳 Payment problems\n• 🛍️ Product questions\n• 🔧 Technical support\n\nType your question or use /support for more options!",
		"support.auto.order_status": "📦 Order Status Help\n\nTo check your order status:\n1. Use /orders command\n2. Or click '📦 Orders' in the main menu\n3. Enter your order ID for tracking\n\nNeed more help? Create a support ticket!",
		"support.auto.payment_help": "💳 Payment Help\n\nWe accept:\n• Bitcoin (BTC)\n• Monero (XMR)\n\nPayment process:\n1. Add items to cart\n2. Proceed to checkout\n3. Send the exact amount to the provided wallet\n4. Confirm payment\n\nNeed help? Create a support ticket!",
		"support.auto.product_info": "🛍️ Product Information\n\nTo view products:\n1. Click '🛍️ Products' in the main menu\n2. Select your country\n3. Browse categories\n\nNeed specific info? Create a support ticket!",
		"support.auto.shipping":     "🚚 Shipping & Delivery\n\nDelivery times:\n• EU: 3-7 days\n• USA: 5-10 days\n• Worldwide: 7-14 days\n\nShipping costs vary by country; check delivery options at checkout.\n\nNeed specific info? Create a support ticket!",
		"support.auto.refund":       "💰 Refund & Return Policy\n\nContact support within 7 days with your order details. Refunds are processed within 3-5 business days.\n\nTo start a return, create a support ticket and explain the reason.\n",
		"support.auto.technical":    "🔧 Technical Support\n\nFor technical issues:\n1. Try restarting your session\n2. Clear your cart and try again\n3. If the problem persists, create a support ticket\n\nWe'll help you resolve it quickly!",
		"support.auto.general":      "❓ General Help\n\nQuick help:\n• /start - Main menu\n• /orders - Check orders\n• /support - Get help\n\nFor specific questions, create a support ticket!",

		"support.faq.title":     "❓ Frequently Asked Questions",
		"support.faq.q1":        "Q: How do I pay?\nA: We accept Bitcoin and Monero. Full instructions appear at checkout.",
		"support.faq.q2":        "Q: How long does delivery take?\nA: EU 3-7 days, USA 5-10 days, worldwide 7-14 days.",
		"support.faq.q3":        "Q: Can I get a refund?\nA: Yes, contact support within 7 days of your order.",
		"support.faq.q4":        "Q: How do I track my order?\nA: Use the /orders command with your order ID.",
		"support.faq.need_more": "Need more help? Create a support ticket!",

		"support.agent.request.title": "👤 Human Agent Request Received",
		"support.agent.request.body":  "Thank you for your request! I've notified our support team that you'd like to speak with a human agent.",
		"support.agent.request.next":  "What happens next:\n• Our support team will respond to you directly\n• Response time: usually within 1-2 hours",
	},
	"bn": {
		"support.title":             "🆘 কাস্টমার সাপোর্ট",
		"support.how_can_help":      "আজ আমরা কীভাবে সাহায্য করতে পারি?",
		"support.menu.create":       "📝 টিকিট তৈরি করুন",
		"support.menu.my":           "📋 আমার টিকিট (%d)",
		"support.menu.faq":          "❓ সাধারণ প্রশ্ন",
		"support.menu.human":        "👤 হিউম্যান এজেন্ট",
		"support.menu.back":         "🔙 ফিরে যান",
		"support.auto.greeting":     "👋 হ্যালো! আমাদের সাপোর্টে স্বাগতম!\n\nআজ আমি কীভাবে সাহায্য করতে পারি?",
		"support.auto.order_status": "📦 অর্ডার স্ট্যাটাস দেখতে /orders কমান্ড ব্যবহার করুন।",
	},
}
