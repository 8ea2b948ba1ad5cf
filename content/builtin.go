package content

// builtin is the default content, keyed by kind. Weights bias selection
// toward the more popular lines.
var builtin = map[string]map[string]int{
	"joke": {
		"Why do programmers prefer dark mode? Because light attracts bugs.":          3,
		"I told my phone a joke about WiFi. It didn't get the connection.":           2,
		"Why did the developer go broke? Because he used up all his cache.":          2,
		"There are only 10 kinds of people: those who know binary and those who don't.": 1,
		"I would tell you a UDP joke, but you might not get it.":                     1,
	},
	"quote": {
		"The best way to predict the future is to invent it.":     2,
		"Simplicity is the ultimate sophistication.":              2,
		"Do what you can, with what you have, where you are.":     1,
		"It always seems impossible until it is done.":            1,
		"Success is walking from failure to failure undiminished.": 1,
	},
	"fact": {
		"Honey never spoils. Sealed honey is edible after thousands of years.": 1,
		"Octopuses have three hearts and blue blood.":                          1,
		"A day on Venus is longer than its year.":                              1,
		"Bananas are berries, but strawberries are not.":                       1,
	},
	"truth": {
		"What is the most embarrassing thing saved on your phone?":   1,
		"What is a secret you have never told anyone in this chat?":  1,
		"Who in this group would you trust with your phone unlocked?": 1,
		"What is the last lie you told?":                             1,
	},
	"dare": {
		"Send the last photo in your gallery.":                        1,
		"Type the next message with your eyes closed.":                1,
		"Change your status to 'I lost a dare' for one hour.":         1,
		"Voice note yourself singing the first song in your library.": 1,
	},
	"trivia": {
		"Which planet has the most moons? (Hint: it also has rings.)": 1,
		"What year did the World Wide Web go public?":                 1,
		"Which country invented tea bags?":                            1,
	},
	"meme": {
		"When the code works on the first try: suspicious silence.": 1,
		"Me: fixes one bug. The codebase: and I took that personally.": 1,
		"404: motivation not found.": 1,
	},
	"8ball": {
		"It is certain.":             1,
		"Without a doubt.":           1,
		"Ask again later.":           1,
		"Don't count on it.":         1,
		"My sources say no.":         1,
		"Signs point to yes.":        1,
		"Outlook not so good.":       1,
		"Reply hazy, try again.":     1,
		"You may rely on it.":        1,
		"Very doubtful.":             1,
	},
	"fortune": {
		"A surprising message will find you before the week ends.": 1,
		"An old friend carries news you have been waiting for.":    1,
		"The door you hesitate at opens easily.":                   1,
		"Patience now buys luck later.":                            1,
	},
	"prediction": {
		"The mists show a journey beginning with a single message.": 1,
		"Someone nearby is about to ask for your help.":             1,
		"A forgotten task resurfaces within three days.":            1,
	},
	"riddle": {
		"I speak without a mouth and hear without ears. What am I?":          1,
		"The more of me you take, the more you leave behind. What am I?":     1,
		"What has keys but opens no locks?":                                  1,
		"What gets wetter the more it dries?":                               1,
	},
	"puzzle": {
		"Rearrange the letters of SILENT to find what you should keep.":     1,
		"Three switches, one bulb behind a closed door. One visit. How?":    1,
		"A farmer, a fox, a hen, and grain must cross a river. Order them.": 1,
	},
	"wisdom": {
		"The quietest person in the room often knows the most.":      1,
		"A mystery solved too quickly was never a mystery at all.":    1,
		"Knowledge whispers; certainty shouts. Trust the whisper.":    1,
	},
	"secret": {
		"The archive beneath the library has a second, older archive.": 1,
		"Every cipher in the old texts shares one key.":                1,
		"The watcher on the hill watches the watchers.":                1,
	},
	"clue": {
		"Follow the symbols that repeat exactly three times.":  1,
		"The answer was in the first message all along.":       1,
		"Count the silences, not the words.":                   1,
	},
	"quest": {
		"Recover the three lost sigils hidden in everyday phrases.": 1,
		"Find the member who has never sent a sticker.":             1,
		"Decode the date hidden in the group description.":          1,
	},
	"mystery": {
		"The trail goes cold at the old harbor, but a light still burns in the warehouse.": 1,
		"Fresh footprints circle the site, yet none approach the door.":                    1,
		"The ledger's last page was torn out in a hurry.":                                  1,
	},
	"decree": {
		"Let it be known: kindness in this court is law.":            1,
		"By royal decree, all doubts are banished until sundown.":    1,
		"The crown commands a day of excellent vibes.":               1,
	},
	"verse": {
		"Psalm 23:1 — The Lord is my shepherd; I shall not want.":                               2,
		"Philippians 4:13 — I can do all things through Christ who strengthens me.":             2,
		"Jeremiah 29:11 — For I know the plans I have for you, declares the Lord.":              1,
		"Proverbs 3:5 — Trust in the Lord with all your heart.":                                 1,
	},
	"prayer": {
		"May your day be guarded, your path made straight, and your heart kept light.": 1,
		"Grant us patience in waiting and gratitude in receiving.":                     1,
		"For strength this morning and peace this evening, we give thanks.":            1,
	},
	"sermon": {
		"On patience: the seed does not argue with the season.":          1,
		"On charity: a hand opened to give is never empty for long.":    1,
	},
	"devotional": {
		"Today, practice one unseen kindness and tell no one.":       1,
		"Read slowly today. The familiar verse has a new edge.":      1,
	},
}
