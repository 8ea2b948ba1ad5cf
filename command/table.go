package command

// table is the full command set. Reactions carry an emoji instead of a
// handler.
var table = [...]Spec{
	// General.
	{Name: "menu", Category: General, Help: "list all commands", Fn: Menu},
	{Name: "help", Category: General, Help: "describe a command", Fn: Help},
	{Name: "ping", Category: General, Help: "check the bot is alive", Fn: Ping},
	{Name: "weather", Category: General, Help: "weather for a location", Fn: Weather},
	{Name: "currency", Category: General, Help: "convert currency", Fn: Currency},
	{Name: "calc", Category: General, Help: "evaluate arithmetic", Fn: Calc},
	{Name: "time", Category: General, Help: "current time", Fn: Clock},
	{Name: "reminder", Category: General, Help: "set a reminder", Fn: Reminder},
	{Name: "notes", Category: General, Help: "keep personal notes", Fn: Notes},
	{Name: "qr", Category: General, Help: "make a QR code", Fn: QR},
	// AI.
	{Name: "ai", Category: AI, Help: "ask the assistant", Fn: Ask},
	{Name: "chatgpt", Category: AI, Help: "chat with the assistant", Fn: Ask},
	{Name: "imageai", Category: AI, Help: "generate an image", Fn: ImageAI},
	{Name: "summarize", Category: AI, Help: "summarize text", Fn: Summarize},
	{Name: "translate", Category: AI, Help: "translate text", Fn: Translate},
	{Name: "code", Category: AI, Help: "generate code", Fn: Code},
	{Name: "ocr", Category: AI, Help: "read text from an image", Fn: OCR},
	{Name: "sentiment", Category: AI, Help: "judge the mood of text", Fn: Sentiment},
	// Fun.
	{Name: "fun", Category: Fun, Help: "list fun commands", Fn: FunMenu},
	{Name: "truth", Category: Fun, Help: "a truth question", Fn: Truth},
	{Name: "dare", Category: Fun, Help: "a dare", Fn: Dare},
	{Name: "trivia", Category: Fun, Help: "a trivia question", Fn: Trivia},
	{Name: "joke", Category: Fun, Help: "a joke", Fn: Joke},
	{Name: "meme", Category: Fun, Help: "a meme caption", Fn: Meme},
	{Name: "fact", Category: Fun, Help: "a random fact", Fn: Fact},
	{Name: "quote", Category: Fun, Help: "an inspirational quote", Fn: Quote},
	{Name: "8ball", Category: Fun, Help: "consult the magic 8-ball", Fn: EightBall},
	{Name: "wordgame", Category: Fun, Help: "scramble a word to guess", Fn: WordGame},
	// Bot control.
	{Name: "bot", Category: BotCtl, Help: "about this bot", Fn: About},
	{Name: "stats", Category: BotCtl, Help: "bot statistics", Fn: BotStats},
	{Name: "autoreply", Category: BotCtl, Help: "toggle automatic replies", Fn: AutoReply},
	{Name: "schedule", Category: BotCtl, Help: "schedule a message", Fn: Schedule},
	{Name: "trigger", Category: BotCtl, Help: "manage custom triggers", Fn: Trigger},
	{Name: "uptime", Category: BotCtl, Help: "how long the bot has run", Fn: Uptime},
	// Group.
	{Name: "group", Category: Group, GroupOnly: true, Help: "group information", Fn: GroupInfo},
	{Name: "welcome", Category: Group, GroupOnly: true, Help: "set the welcome message", Fn: Welcome},
	{Name: "rules", Category: Group, GroupOnly: true, Help: "show group rules", Fn: Rules},
	// Download.
	{Name: "download", Category: Download, Help: "download media from a link", Fn: DownloadURL},
	{Name: "yt", Category: Download, Help: "download from YouTube", Fn: DownloadURL},
	{Name: "ig", Category: Download, Help: "download from Instagram", Fn: DownloadURL},
	{Name: "tiktok", Category: Download, Help: "download from TikTok", Fn: DownloadURL},
	{Name: "fb", Category: Download, Help: "download from Facebook", Fn: DownloadURL},
	{Name: "spotify", Category: Download, Help: "download from Spotify", Fn: DownloadURL},
	{Name: "convert", Category: Download, Help: "convert downloaded media", Fn: Convert},
	// God.
	{Name: "god", Category: God, Help: "list faith commands", Fn: GodMenu},
	{Name: "bible", Category: God, Help: "a Bible verse", Fn: Bible},
	{Name: "prayer", Category: God, Help: "a prayer", Fn: Prayer},
	{Name: "sermon", Category: God, Help: "a short sermon", Fn: Sermon},
	{Name: "devotional", Category: God, Help: "today's devotional", Fn: Devotional},
	{Name: "church", Category: God, Help: "service times", Fn: Church},
	// Extra.
	{Name: "extra", Category: Extra, Help: "list extra commands", Fn: ExtraMenu},
	{Name: "tts", Category: Extra, Help: "text to speech", Fn: TTS},
	{Name: "timer", Category: Extra, Help: "start a timer", Fn: Timer},
	{Name: "encrypt", Category: Extra, Help: "encode text", Fn: Encrypt},
	{Name: "decode", Category: Extra, Help: "decode text", Fn: Decode},
	// Mystery flavor.
	{Name: "mystery", Category: Extra, Help: "investigate a mystery", Fn: Mystery},
	{Name: "discover", Category: Extra, Help: "record a discovery", Fn: Discover},
	{Name: "puzzle", Category: Extra, Help: "a puzzle", Fn: Puzzle},
	{Name: "riddle", Category: Extra, Help: "a riddle", Fn: Riddle},
	{Name: "secret", Category: Extra, Help: "learn a secret", Fn: Secret},
	{Name: "level", Category: Extra, Help: "your mystery level", Fn: Level},
	{Name: "clue", Category: Extra, Help: "a clue", Fn: Clue},
	{Name: "predict", Category: Extra, Help: "a prediction", Fn: Predict},
	{Name: "fortune", Category: Extra, Help: "your fortune", Fn: Fortune},
	{Name: "wisdom", Category: Extra, Help: "words of wisdom", Fn: Wisdom},
	{Name: "quest", Category: Extra, Help: "your current quest", Fn: Quest},
	// Royal flavor.
	{Name: "court", Category: Extra, Help: "enter the royal court", Fn: Court},
	{Name: "favor", Category: Extra, Help: "earn royal favor", Fn: Favor},
	{Name: "rank", Category: Extra, Help: "your royal rank", Fn: Rank},
	{Name: "royal", Category: Extra, Help: "a royal decree", Fn: Royal},
	// Admin.
	{Name: "admin", Category: Admin, Help: "list admin commands", Fn: AdminMenu},
	{Name: "control", Category: Admin, Help: "bot control panel", Fn: Control},
	{Name: "vipadd", Category: Admin, Help: "grant VIP status", Fn: VIPAdd},
	{Name: "vipremove", Category: Admin, Help: "revoke VIP status", Fn: VIPRemove},
	{Name: "botrestart", Category: Admin, Help: "restart a bot", Fn: BotRestart},
	{Name: "system", Category: Admin, Help: "system status", Fn: System},
	{Name: "broadcast", Category: Admin, Help: "message all sessions", Fn: Broadcast},
	{Name: "maintenance", Category: Admin, Help: "toggle maintenance mode", Fn: Maintenance},
	{Name: "backup", Category: Admin, Help: "back up bot data", Fn: Backup},
	{Name: "restore", Category: Admin, Help: "restore bot data", Fn: Restore},
	{Name: "logs", Category: Admin, Help: "recent command log", Fn: Logs},
	{Name: "shutdown", Category: Admin, Help: "shut down a bot", Fn: Shutdown},
	// VIP.
	{Name: "vip", Category: VIP, Help: "list VIP commands", Fn: VIPMenu},
	{Name: "vipstatus", Category: VIP, Help: "your VIP status", Fn: VIPStatus},
	{Name: "vipsession", Category: VIP, Help: "your session details", Fn: VIPSession},
	{Name: "vipmedia", Category: VIP, Help: "exclusive media", Fn: VIPMedia},
	{Name: "vipnews", Category: VIP, Help: "exclusive news", Fn: VIPNews},
	{Name: "vipmusic", Category: VIP, Help: "exclusive music", Fn: VIPMusic},
	{Name: "vipgame", Category: VIP, Help: "exclusive games", Fn: VIPGame},
	{Name: "badge", Category: VIP, Help: "set your VIP badge", Fn: Badge},
	// Moderation.
	{Name: "antilink", Category: Moderation, GroupOnly: true, Help: "link protection", Fn: Antilink},
	{Name: "antibot", Category: Moderation, GroupOnly: true, Help: "bot protection", Fn: Antibot},
	{Name: "banword", Category: Moderation, GroupOnly: true, Help: "banned word list", Fn: Banword},
	{Name: "promote", Category: Moderation, GroupOnly: true, Help: "promote a member", Fn: Promote},
	{Name: "demote", Category: Moderation, GroupOnly: true, Help: "demote a member", Fn: Demote},
	{Name: "tagall", Category: Moderation, GroupOnly: true, Help: "mention everyone", Fn: TagAll},
	{Name: "tagadm", Category: Moderation, GroupOnly: true, Help: "mention the admins", Fn: TagAdmins},
	// Analytics.
	{Name: "active", Category: Analytics, Help: "active session count", Fn: Active},
	{Name: "online", Category: Analytics, Help: "online users", Fn: Online},
	{Name: "usage", Category: Analytics, Help: "command usage report", Fn: Usage},
	// Reactions.
	{Name: "laugh", Category: Reaction, Emoji: "😂"},
	{Name: "cry", Category: Reaction, Emoji: "😢"},
	{Name: "fire", Category: Reaction, Emoji: "🔥"},
	{Name: "love", Category: Reaction, Emoji: "❤️"},
	{Name: "angry", Category: Reaction, Emoji: "😠"},
	{Name: "clown", Category: Reaction, Emoji: "🤡"},
	{Name: "ghost", Category: Reaction, Emoji: "👻"},
	{Name: "alien", Category: Reaction, Emoji: "👽"},
	{Name: "robot", Category: Reaction, Emoji: "🤖"},
	{Name: "thumbsup", Category: Reaction, Emoji: "👍"},
	{Name: "hearteyes", Category: Reaction, Emoji: "😍"},
	{Name: "thinking", Category: Reaction, Emoji: "🤔"},
	{Name: "party", Category: Reaction, Emoji: "🎉"},
	{Name: "cool", Category: Reaction, Emoji: "😎"},
	{Name: "sick", Category: Reaction, Emoji: "🤒"},
	{Name: "rich", Category: Reaction, Emoji: "🤑"},
	{Name: "shush", Category: Reaction, Emoji: "🤫"},
	{Name: "wave", Category: Reaction, Emoji: "👋"},
	{Name: "flex", Category: Reaction, Emoji: "💪"},
	{Name: "poop", Category: Reaction, Emoji: "💩"},
}
