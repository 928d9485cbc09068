// Package words holds the curated word tables used to draw solo-mode
// secrets. Tables are plain data: when no table exists for a language/length
// pair the caller falls back to random-letter generation.
package words

import (
	"math/rand"

	"github.com/Ezo333/Mini-game/internal/game"
)

var enWords = map[int][]string{
	4: {
		"ABLE", "ACID", "AREA", "ARMY", "AWAY", "BABY", "BACK", "BALL",
		"BAND", "BANK", "BASE", "BEAR", "BELL", "BEST", "BIRD", "BLUE",
		"BOAT", "BODY", "BOOK", "BOTH", "CAFE", "CAKE", "CALL", "CARD",
		"CARE", "CASH", "CITY", "CODE", "COLD", "COPY", "CORE", "DARK",
		"DATA", "DEEP", "DESK", "DOOR", "DOWN", "DRAW", "DROP", "DUTY",
		"EACH", "EAST", "EASY", "EDGE", "EVEN", "FACE", "FACT", "FARM",
		"FAST", "FIRE", "FISH", "FIVE", "FOOD", "FOUR", "FREE", "GAME",
		"GATE", "GIFT", "GIRL", "GOAL", "GOLD", "GOOD", "HAND", "HARD",
		"HEAD", "HELP", "HERO", "HIGH", "HOME", "HOPE", "HOUR", "IDEA",
		"IRON", "ITEM", "JOIN", "JUMP", "KIND", "KING", "KNOW", "LAKE",
		"LAND", "LAST", "LATE", "LIFE", "LINE", "LION", "LIST", "LONG",
		"LOOK", "LOVE", "LUCK", "MAIL", "MAIN", "MAKE", "MANY", "MARK",
		"MILK", "MIND", "MOON", "MORE", "MOVE", "NAME", "NEAR", "NEWS",
		"NEXT", "NICE", "NOTE", "OPEN", "OVER", "PAGE", "PARK", "PART",
		"PLAN", "PLAY", "RACE", "RAIN", "READ", "RICH", "RING", "ROAD",
		"ROCK", "ROOM", "SAFE", "SAND", "SHIP", "SHOW", "SIGN", "SNOW",
		"SONG", "STAR", "STOP", "TEAM", "TIME", "TOWN", "TREE", "TRUE",
		"WALK", "WALL", "WARM", "WAVE", "WEEK", "WEST", "WIND", "WORD",
	},
	5: {
		"ABOUT", "ABOVE", "ADULT", "AFTER", "AGENT", "AGREE", "ALARM",
		"ALBUM", "ALERT", "ALIVE", "ALLOW", "ALONE", "ANGEL", "ANGRY",
		"APPLE", "APPLY", "ARENA", "AUDIO", "AVOID", "AWARD", "BASIC",
		"BEACH", "BEGIN", "BLACK", "BLOCK", "BLOOD", "BOARD", "BRAIN",
		"BREAD", "BREAK", "BRING", "BROWN", "BUILD", "CABLE", "CARRY",
		"CATCH", "CAUSE", "CHAIN", "CHAIR", "CHARM", "CHART", "CHECK",
		"CHESS", "CHIEF", "CHILD", "CLEAN", "CLEAR", "CLOCK", "CLOSE",
		"COACH", "COAST", "COUNT", "COURT", "COVER", "CRAFT", "CREAM",
		"CROWD", "CROWN", "DAILY", "DANCE", "DEPTH", "DOZEN", "DRAFT",
		"DREAM", "DRESS", "DRINK", "DRIVE", "EARLY", "EARTH", "EIGHT",
		"EMPTY", "ENJOY", "ENTER", "EQUAL", "EVENT", "EVERY", "EXACT",
		"EXTRA", "FAITH", "FIELD", "FINAL", "FIRST", "FLOOR", "FOCUS",
		"FORCE", "FRAME", "FRESH", "FRONT", "FRUIT", "GIANT", "GLASS",
		"GRACE", "GRAND", "GRASS", "GREAT", "GREEN", "GROUP", "GUARD",
		"GUESS", "GUIDE", "HAPPY", "HEART", "HORSE", "HOTEL", "HOUSE",
		"HUMAN", "IMAGE", "INDEX", "ISSUE", "JUDGE", "LARGE", "LAUGH",
		"LAYER", "LEARN", "LEMON", "LEVEL", "LIGHT", "LOCAL", "LUCKY",
		"LUNCH", "MAGIC", "MAJOR", "MATCH", "METAL", "MODEL", "MONEY",
		"MONTH", "MOUSE", "MOUTH", "MOVIE", "MUSIC", "NIGHT", "NOISE",
		"NORTH", "NOVEL", "OCEAN", "OFFER", "ORDER", "PAINT", "PANEL",
		"PAPER", "PARTY", "PEACE", "PHONE", "PLANT", "POINT", "POWER",
		"PRIZE", "QUEEN", "QUICK", "QUIET", "RADIO", "RAPID", "REACH",
		"RIVER", "ROUND", "ROYAL", "SCALE", "SCENE", "SCORE", "SHARE",
		"SHIFT", "SHINE", "SHORE", "SIGHT", "SKILL", "SLEEP", "SMALL",
		"SMART", "SMILE", "SOLID", "SOUND", "SOUTH", "SPACE", "SPEAK",
		"SPEED", "SPORT", "STAGE", "STAND", "START", "STEAM", "STEEL",
		"STONE", "STORE", "STORM", "STORY", "SUGAR", "SWEET", "TABLE",
		"TEACH", "THANK", "THEME", "TIGER", "TITLE", "TOAST", "TOUCH",
		"TOWER", "TRACK", "TRADE", "TRAIN", "TREND", "TRUST", "TRUTH",
		"UNCLE", "UNION", "URBAN", "USUAL", "VALUE", "VIDEO", "VISIT",
		"VOICE", "WATCH", "WATER", "WHEAT", "WHEEL", "WHITE", "WHOLE",
		"WOMAN", "WORLD", "WORTH", "WOUND", "WRITE", "WRONG", "YOUNG",
	},
	6: {
		"ACCEPT", "ACCESS", "ACROSS", "ACTION", "ACTIVE", "ADVICE",
		"AGENCY", "ALMOST", "ALWAYS", "AMOUNT", "ANIMAL", "ANSWER",
		"ANYONE", "APPEAR", "AROUND", "ARRIVE", "ARTIST", "ASPECT",
		"ATTACK", "AUTHOR", "AUTUMN", "BATTLE", "BEAUTY", "BECOME",
		"BEFORE", "BEHIND", "BELONG", "BETTER", "BEYOND", "BORDER",
		"BOTTLE", "BOTTOM", "BRANCH", "BRIDGE", "BRIGHT", "BUDGET",
		"BUTTON", "CAMERA", "CANVAS", "CAREER", "CASTLE", "CENTER",
		"CHANCE", "CHANGE", "CHARGE", "CHOICE", "CHOOSE", "CIRCLE",
		"CLOSED", "COFFEE", "COMMON", "COPPER", "CORNER", "COTTON",
		"COUPLE", "COURSE", "CREATE", "CREDIT", "CUSTOM", "DAMAGE",
		"DANGER", "DECADE", "DECIDE", "DEGREE", "DESIGN", "DESIRE",
		"DETAIL", "DEVICE", "DINNER", "DIRECT", "DOCTOR", "DOUBLE",
		"DRAGON", "DURING", "EFFECT", "EFFORT", "EIGHTY", "EITHER",
		"ENERGY", "ENGINE", "ENOUGH", "ESCAPE", "EXPAND", "EXPERT",
		"FABRIC", "FAMILY", "FAMOUS", "FATHER", "FIGURE", "FINGER",
		"FINISH", "FLIGHT", "FLOWER", "FOREST", "FORGET", "FORMAL",
		"FRIEND", "FUTURE", "GARDEN", "GATHER", "GENTLE", "GLOBAL",
		"GOLDEN", "GROUND", "GROWTH", "GUITAR", "HANDLE", "HAPPEN",
		"HEALTH", "HEIGHT", "HIDDEN", "HONEST", "IMPACT", "INCOME",
		"INDEED", "INSIDE", "ISLAND", "JUNGLE", "KNIGHT", "LAUNCH",
		"LEADER", "LEGACY", "LENGTH", "LESSON", "LETTER", "LISTEN",
		"LITTLE", "LIVING", "LUXURY", "MARKET", "MASTER", "MATTER",
		"MEMBER", "MEMORY", "METHOD", "MIDDLE", "MINUTE", "MIRROR",
		"MODERN", "MOMENT", "MOTHER", "MOTION", "MUSEUM", "NATION",
		"NATURE", "NEARBY", "NOTICE", "NUMBER", "OBJECT", "OFFICE",
		"ORANGE", "ORIGIN", "PALACE", "PARENT", "PEOPLE", "PERIOD",
		"PERSON", "PLANET", "PLEASE", "POCKET", "POLICE", "PRETTY",
		"PRINCE", "PROFIT", "PUBLIC", "PURPLE", "RABBIT", "REASON",
		"RECORD", "REMAIN", "RESULT", "RETURN", "REVIEW", "REWARD",
		"RHYTHM", "SAFETY", "SAMPLE", "SEASON", "SECOND", "SECRET",
		"SHADOW", "SILVER", "SIMPLE", "SINGLE", "SISTER", "SMOOTH",
		"SOCIAL", "SPIRIT", "SPRING", "SQUARE", "STREAM", "STREET",
		"STRONG", "SUMMER", "SYSTEM", "TALENT", "TEMPLE", "THEORY",
		"THIRTY", "THREAD", "TICKET", "TRAVEL", "TWELVE", "UNIQUE",
		"VALLEY", "VISION", "WEALTH", "WINDOW", "WINTER", "WISDOM",
		"WONDER", "YELLOW",
	},
}

// Lookup returns a random curated word for the language/length pair, or
// false when no table exists for it.
func Lookup(language game.Language, length int) (string, bool) {
	if language != game.LanguageEN {
		return "", false
	}
	list := enWords[length]
	if len(list) == 0 {
		return "", false
	}
	return list[rand.Intn(len(list))], true
}
