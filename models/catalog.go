package models

// Catalog ids with gating meaning.
const (
	FAFOMissionID        = 1
	BuyInSelectMissionID = 4
	FinishLineMissionID  = 50
)

// SetupMissionIDs is the onboarding prefix every player clears first.
var SetupMissionIDs = []int{1, 2, 3, 4}

// DefaultBuyIns in the order the selection mission presents them.
var DefaultBuyIns = []BuyIn{
	{
		ID:          BuyInRecycling,
		Title:       "Green Warrior",
		Description: "Recycle two 50 gallon trash bags of cans/bottles",
		Badge:       "captain-planet-color.png",
		Hashtag:     "#missionmischiefgreen",
		ProofHint:   "Recycling voucher with card",
	},
	{
		ID:          BuyInCleanup,
		Title:       "Oscar the Grouch",
		Description: "Public clean-up of two 50 gallon trash bags",
		Badge:       "oscar-the-grouch-color.png",
		Hashtag:     "#missionmischiefoscar",
		ProofHint:   "Pose as Oscar the grouch",
	},
	{
		ID:          BuyInReferral,
		Title:       "Bye Bye Bye",
		Description: "Sign up three users for Mission Mischief",
		Badge:       "justin-timberlake-color.png",
		Hashtag:     "#missionmischiefbuybuybuy",
		ProofHint:   "All 4 users do Nsync's bye-bye-bye",
	},
	{
		ID:          BuyInNothing,
		Title:       "License to Ill",
		Description: "Do nothing. No badge. One mission unlocked at a time.",
		Hashtag:     "#missionmischiefnothing",
		ProofHint:   "Your patience and dedication",
	},
}

// DefaultBadges, keyed by the badge_group used on missions.
var DefaultBadges = []Badge{
	{ID: "mugshot", Name: "Mugshot", Icon: "irritant-label-color.png"},
	{ID: "setup", Name: "Setup Card", Icon: "note-color.png"},
	{ID: "beer", Name: "Beer Emoji", Icon: "beer-emoji-color.png"},
	{ID: "slimshady", Name: "Slim Shady", Icon: "slim-shady-color.png"},
	{ID: "coffee", Name: "Coffee", Icon: "coffee-color.png"},
	{ID: "book", Name: "Book For Dummies", Icon: "book-for-dummies-color.png"},
	{ID: "bear", Name: "Brown Bear", Icon: "teddy-bear-color.png"},
	{ID: "plant", Name: "Green Leaf", Icon: "green-leaf-color.png"},
	{ID: "pepper", Name: "Chili Pepper", Icon: "red-hot-chili-pepper-color.png"},
	{ID: "towel", Name: "Towelie", Icon: "towlie-color.png"},
	{ID: "blood", Name: "Rocky Horror Lips", Icon: "rocky-horror-lips-color.png"},
	{ID: "recycle", Name: "Mic", Icon: "mic-color.png"},
	{ID: "thrift", Name: "Tag", Icon: "tag-color.png"},
	{ID: "pants", Name: "Salvation Army Logo", Icon: "salvation-army-logo-color.png"},
	{ID: "thirsty", Name: "40oz Brown Bagged", Icon: "40oz-color.png"},
	{ID: "bigfoot", Name: "Big Red Shoe", Icon: "big-red-shoe-color.png"},
	{ID: "diner", Name: "Pie w/ Hole", Icon: "apple-pie-color.png"},
	{ID: "liger", Name: "Liger", Icon: "liger-color.png"},
	{ID: "netflix", Name: "Netflix", Icon: "netflix-color.png"},
	{ID: "daddy", Name: "Hammer", Icon: "hammer-color.png"},
	{ID: "catfish", Name: "Catfish", Icon: "catfish-color.png"},
	{ID: "eyes", Name: "Googley Eyes", Icon: "googly-eyes-color.png"},
	{ID: "ghost", Name: "Sock Puppet", Icon: "ghost-color.png"},
	{ID: "slide", Name: "Dobby", Icon: "dobby-color.png"},
	{ID: "note", Name: "Magazine Clipping Note", Icon: "note-color.png"},
	{ID: "bounty", Name: "Dog Bounty Hunter", Icon: "nieghborhood-watch-sign-color.png"},
	{ID: "crown", Name: "Crown of Chaos", Icon: "captain-planet-color.png"},
}

// DefaultMissions is the canonical 50-mission catalog, in play order.
var DefaultMissions = []Mission{
	{ID: 1, Title: "FAFO (F*** Around and Find Out)", Location: "Anywhere",
		Description: "Read funny ToS, check agreement box, take mugshot selfie with date/time sign",
		ProofHint:   "Mugshot-style selfie holding sign with today's date and time",
		Hashtag:     "#iwillnotsuemissionmischief", Kind: MissionKindSpecial,
		Points: FixedPoints(0, "PRICELESS"), CardDrop: "N/A (setup mission)", Mayhem: "EXCITED"},
	{ID: 2, Title: "License To Ill", Location: "Anywhere",
		Description: "Setup business cards, print",
		ProofHint:   "Selfie with business card (QR Code and details clear)",
		Hashtag:     "#missionmischieflicensetoill", Kind: MissionKindSetup,
		Points: FixedPoints(1, "1"), CardDrop: "N/A (creates your cards)", Mayhem: "EXCITED"},
	{ID: 3, Title: "Buy Me A Beer", Location: "Anywhere",
		Description: "Setup Buy Me A Coffee account, change to beer, post the message, then get ANYONE to buy you a beer ($5)",
		ProofHint:   "Screenshot of the message on your account + Screenshot of anyone buying you a beer",
		Hashtag:     "#missionmischiefbuymeabeer", BadgeGroup: "beer", Kind: MissionKindSetup,
		Points: SetPoints("1 / 3", 1, 3), CardDrop: "N/A (setup mission)", Mayhem: "EXCITED"},
	{ID: 4, Title: "Choose Your Destiny", Location: "Anywhere",
		Description: "Choose your path to unlock missions: Green Warrior, Oscar the Grouch, Bye Bye Bye, or License to Ill (do nothing, unlock missions one at a time)",
		ProofHint:   "Complete ONE of the four paths above",
		Hashtag:     "#missionmischiefdestiny", Kind: MissionKindBuyIn,
		Points: RangePoints(0, 3, "0-3"), CardDrop: "Varies by path chosen", Mayhem: "EXCITED"},

	{ID: 5, Title: "The Real Slim Shady", Location: "Bookstore/Library",
		Description: "Find \"Art of Not Giving A F*ck\", pose with book in one hand while flipping off the camera with the other, leave card in page #69",
		ProofHint:   "Hold book, flip off camera (pinkie=1pt, middle=3pts)",
		Hashtag:     "#missionmischiefslimshady", BadgeGroup: "slimshady", Kind: MissionKindPrank,
		Points: RangePoints(1, 3, "1-3"), CardDrop: "Leave card in page #69 of book", Mayhem: "EXCITED"},
	{ID: 6, Title: "Your Momma", Location: "Public area with audience",
		Description: "Tell a \"Your momma\" joke",
		ProofHint:   "Video of you telling joke",
		Hashtag:     "#missionmischiefyourmomma", BadgeGroup: "slimshady", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Give to person who laughed hardest", Mayhem: "EXCITED"},

	{ID: 7, Title: "YOLO", Location: "Coffee Shop",
		Description: "Order coffee as \"Bueller\" and get as many pens and pencils on your head as you can before the barista calls your name",
		ProofHint:   "Video with pens/pencils on head, barista saying \"Bueller\" (1pt per pen/pencil)",
		Hashtag:     "#missionmischiefyolo", BadgeGroup: "coffee", Kind: MissionKindPrank,
		Points: VariablePoints(1, 50, "?"), CardDrop: "Give to the barista that helped you", Mayhem: "EXCITED"},
	{ID: 8, Title: "Coffee Stranger", Location: "Anywhere",
		Description: "Give coffee to stranger with your card",
		ProofHint:   "Picture of you, stranger, coffee and card",
		Hashtag:     "#missionmischiefcoffee", BadgeGroup: "coffee", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Give card to person you give coffee to", Mayhem: "EXCITED"},

	{ID: 9, Title: "Saving Fantasia", Location: "Public Library",
		Description: "Get library card, take a selfie in front a bookshelf, and leave your card on a table",
		ProofHint:   "Selfie with library card in front of bookshelf",
		Hashtag:     "#missionmischieffantasia", BadgeGroup: "book", Kind: MissionKindPrank,
		Points: FixedPoints(1, "1"), CardDrop: "Leave on a table", Mayhem: "EXCITED"},
	{ID: 10, Title: "Take A Poo", Location: "Library",
		Description: "Rent \"Everybody Poops\", leave your card in the cover of a different copy, have your picture taken reading it while sitting down",
		ProofHint:   "Hold book open, sitting (bench=1pt, toilet=3pts, pants ON!)",
		Hashtag:     "#missionmischieftakeapoo", BadgeGroup: "book", Kind: MissionKindGoodwill,
		Points: RangePoints(1, 3, "1-3"), CardDrop: "Place card in the cover of a copy of \"Everybody Poops\"", Mayhem: "BLANK STARE"},

	{ID: 11, Title: "Van Gogh", Location: "Store",
		Description: "Get brown bear and draw it",
		ProofHint:   "Selfie with drawing",
		Hashtag:     "#missionmischiefvangogh", BadgeGroup: "bear", Kind: MissionKindPrank,
		Points: FixedPoints(1, "1"), CardDrop: "N/A", Mayhem: "EXCITED"},
	{ID: 12, Title: "Take Care, Brown Bear", Location: "Anywhere",
		Description: "Give bear, drawing and card to stranger",
		ProofHint:   "You, stranger holding bear, drawing, and card",
		Hashtag:     "#missionmischieftakecare", BadgeGroup: "bear", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Give card to stranger you give bear and drawing to", Mayhem: "EXCITED"},

	{ID: 13, Title: "Smoke Pot", Location: "Plant Nursery",
		Description: "Find small potted plant at nursery. Hold plant, act like smoking joint",
		ProofHint:   "Hold plant, act like smoking joint",
		Hashtag:     "#missionmischiefsmokepot", BadgeGroup: "plant", Kind: MissionKindPrank,
		Points: FixedPoints(1, "1"), CardDrop: "Leave your card where you found the plant", Mayhem: "EXCITED"},
	{ID: 14, Title: "Bought Pot", Location: "Plant Nursery",
		Description: "Buy the plant. Money is no object here. Go cheap if you'd like.",
		ProofHint:   "Picture of receipt",
		Hashtag:     "#missionmischiefboughtpot", BadgeGroup: "plant", Kind: MissionKindGoodwill,
		Points: FixedPoints(1, "1"), CardDrop: "Give to cashier", Mayhem: "BLANK STARE"},
	{ID: 15, Title: "Love Alfalfa", Location: "Anywhere",
		Description: "Sing \"You are so beautiful\" to plant (Alfalfa impression)",
		ProofHint:   "Hold plant, stare while singing (1pt singing, 3pts with Alfalfa point)",
		Hashtag:     "#missionmischiefalfalfa", BadgeGroup: "pepper", Kind: MissionKindPrank,
		Points: RangePoints(1, 3, "1-3"), CardDrop: "N/A", Mayhem: "EXCITED"},
	{ID: 16, Title: "Give It Away, Now", Location: "Anywhere",
		Description: "Give plant to neighbor with card",
		ProofHint:   "You and neighbor holding plant with card",
		Hashtag:     "#missionmischiefrhcp", BadgeGroup: "pepper", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Give to neighbor with plant", Mayhem: "EXCITED"},

	{ID: 17, Title: "You're A Towel", Location: "Store or home",
		Description: "Get a big blue towel and video it over your head as you do a Towelie voice phrase in store or at home",
		ProofHint:   "Video with towel over head (store=3pts, home=1pt)",
		Hashtag:     "#missionmischieftowelie", BadgeGroup: "towel", Kind: MissionKindPrank,
		Points: RangePoints(1, 3, "1-3"), CardDrop: "Leave on towel rack", Mayhem: "EXCITED"},
	{ID: 18, Title: "Sarah McLachlaned", Location: "Animal Shelter",
		Description: "Donate towel to animal shelter. Take a picture with one of the animals there.",
		ProofHint:   "Selfie with animal, sad face (1pt) + blue towel shown (3pts)",
		Hashtag:     "#missionmischiefaspca", BadgeGroup: "towel", Kind: MissionKindGoodwill,
		Points: RangePoints(1, 3, "1-3"), CardDrop: "Pin to bulletin board at shelter", Mayhem: "CRYING"},

	{ID: 19, Title: "Edward", Location: "Blood Bank",
		Description: "Go to a blood bank dressed as vampire, donate blood or time.",
		ProofHint:   "Dramatic pose with blood bank name (3pts) + donate blood or time (10pts)",
		Hashtag:     "#missionmischiefedward", BadgeGroup: "blood", Kind: MissionKindPrank,
		Points: RangePoints(3, 10, "3-10"), CardDrop: "Leave on waiting room chair", Mayhem: "VAMPIRE"},
	{ID: 20, Title: "Bella", Location: "Blood Bank",
		Description: "Donate blood or time",
		ProofHint:   "Photo of bandage or volunteer badge showing you from the waist up",
		Hashtag:     "#missionmischiefbella", BadgeGroup: "blood", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Leave on waiting room chair", Mayhem: "HALO"},

	{ID: 21, Title: "Pop Star", Location: "Recycling Center",
		Description: "20 bottles/cans in circle, rockstar pose",
		ProofHint:   "Stand in circle of your recyclings screaming into fake mic with recycling center name in background",
		Hashtag:     "#missionmischiefpopstar", BadgeGroup: "recycle", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "give to innocent bystander", Mayhem: "EXCITED"},
	{ID: 22, Title: "Crushed It", Location: "Recycling Center",
		Description: "Recycle 20 cans/bottles",
		ProofHint:   "Picture of voucher",
		Hashtag:     "#missionmischiefcrushedit", BadgeGroup: "recycle", Kind: MissionKindGoodwill,
		Points: FixedPoints(1, "1"), CardDrop: "Give to person working the center", Mayhem: "EXCITED"},

	{ID: 23, Title: "Popping Tags", Location: "Thrift Shop",
		Description: "10 sec Macklemore rap with thrift items as props. Get 1 point for every thrift store item you have on during video",
		ProofHint:   "Video rapping (1pt per item worn)",
		Hashtag:     "#missionmischiefpoppingtags", BadgeGroup: "thrift", Kind: MissionKindPrank,
		Points: VariablePoints(1, 50, "?"), CardDrop: "Leave on shop counter", Mayhem: "BLANK STARE"},
	{ID: 24, Title: "Pocket Pull", Location: "Thrift Shop",
		Description: "Place card in 5 different pant pockets",
		ProofHint:   "Picture holding pulled out pant pocket",
		Hashtag:     "#missionmischiefpocketpull", BadgeGroup: "thrift", Kind: MissionKindGoodwill,
		Points: FixedPoints(1, "1"), CardDrop: "5 cards into 5 different pant pockets", Mayhem: "BLANK STARE"},

	{ID: 25, Title: "Jump", Location: "Anywhere",
		Description: "Find oversized pants",
		ProofHint:   "Oversized pants on backwards, arms crossed gangster pose",
		Hashtag:     "#missionmischiefjump", BadgeGroup: "pants", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "N/A", Mayhem: "EXCITED"},
	{ID: 26, Title: "Pants Down", Location: "Salvation Army",
		Description: "Donate pants with card in pocket to Salvation Army",
		ProofHint:   "Photo of receipt",
		Hashtag:     "#missionmischiefpantsdown", BadgeGroup: "pants", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "In pants pocket", Mayhem: "EXCITED"},

	{ID: 27, Title: "Stranger Danger", Location: "Video Call",
		Description: "Video dance off with another Mission Mischief player to \"You Never Can Tell\" by Chuck Berry, Pulp Fiction style.",
		ProofHint:   "30 sec Pulp Fiction inspired dance (5 sec turns each)",
		Hashtag:     "#missionmischiefstrangerdanger", BadgeGroup: "thirsty", Kind: MissionKindSpecial,
		Points: FixedPoints(10, "10"), CardDrop: "N/A", Mayhem: "EXCITED"},
	{ID: 28, Title: "40oz To Freedom", Location: "Anywhere",
		Description: "Buy another player a beer (via Buy Me A Coffee). Mayhem loves free drinks js",
		ProofHint:   "Screenshot your purchased message, \"Give this to Mayhem.\"",
		Hashtag:     "#missionmischiefcheers", BadgeGroup: "thirsty", Kind: MissionKindSpecial,
		Points: FixedPoints(10, "10"), CardDrop: "40oz Brown Bagged", Mayhem: "EXCITED"},

	{ID: 29, Title: "Bigfoot", Location: "Shoe Store",
		Description: "Find largest shoe on display at shoe store. Take a picture holding it and looking down.",
		ProofHint:   "Picture waist high holding shoe, looking down",
		Hashtag:     "#missionmischiefbigfoot", BadgeGroup: "bigfoot", Kind: MissionKindPrank,
		Points: FixedPoints(1, "1"), CardDrop: "Leave in shoe box when trying on shoe", Mayhem: "EXCITED"},
	{ID: 30, Title: "Sobriety Test", Location: "Shoe Store",
		Description: "Try on biggest shoes, walk while touching nose",
		ProofHint:   "10 sec video walking in shoes, touching nose with each hand",
		Hashtag:     "#missionmischiefsobrietytest", BadgeGroup: "bigfoot", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Leave card on counter on way out", Mayhem: "EXCITED"},

	{ID: 31, Title: "American Pie", Location: "Diner",
		Description: "Order a piece of apple pie at local diner",
		ProofHint:   "Picture of pie with you pointing at it with two fingers",
		Hashtag:     "#missionmischiefamericanpie", BadgeGroup: "diner", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "Leave card at table", Mayhem: "EXCITED"},
	{ID: 32, Title: "Give A Piece", Location: "Diner",
		Description: "Buy pie for stranger at diner. Either you or the server take the piece with the card to stranger",
		ProofHint:   "Picture with stranger, pie, and your card underneath",
		Hashtag:     "#missionmischiefgiveapiece", BadgeGroup: "diner", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Give with piece of pie", Mayhem: "EXCITED"},

	{ID: 33, Title: "Dynamite", Location: "Anywhere",
		Description: "Draw Napoleon Dynamite's favorite animal, the Liger",
		ProofHint:   "You holding up your Liger drawing like a proud 1st grader",
		Hashtag:     "#missionmischiefdynamite", BadgeGroup: "liger", Kind: MissionKindPrank,
		Points: FixedPoints(1, "1"), CardDrop: "N/A", Mayhem: "EXCITED"},
	{ID: 34, Title: "Lost Liger", Location: "Street",
		Description: "Make \"Lost\" flyer with liger drawing, tape to stop sign",
		ProofHint:   "Picture of drawing taped to stop sign",
		Hashtag:     "#missionmischieflostliger", BadgeGroup: "liger", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Tape card to liger drawing", Mayhem: "EXCITED"},

	{ID: 35, Title: "Netflix and Chill", Location: "Library",
		Description: "Ask librarian where to find book on \"how to Netflix and chill\"",
		ProofHint:   "Video of you asking and them responding",
		Hashtag:     "#missionmischiefnetflixandchill", BadgeGroup: "netflix", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "Give card to librarian", Mayhem: "EXCITED"},
	{ID: 36, Title: "Give a Poo", Location: "Library",
		Description: "Return \"Everyone Poops\" with card in back",
		ProofHint:   "Photo of you dropping book in or at book drop off",
		Hashtag:     "#missionmischiefgiveapoo", BadgeGroup: "netflix", Kind: MissionKindGoodwill,
		Points: FixedPoints(1, "1"), CardDrop: "In back cover of book", Mayhem: "EXCITED"},

	{ID: 37, Title: "Daddy Issues", Location: "Hardware Store",
		Description: "Ask male employee at hardware store \"Are you my daddy?\"",
		ProofHint:   "Video of you asking and them responding",
		Hashtag:     "#missionmischiefdaddyissues", BadgeGroup: "daddy", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "Give employee card", Mayhem: "EXCITED"},
	{ID: 38, Title: "Bird Cage", Location: "Anywhere",
		Description: "Build birdhouse kit, paint each side different Beetlejuice colors",
		ProofHint:   "Photo of your completed birdhouse",
		Hashtag:     "#missionmischiefbirdcage", BadgeGroup: "daddy", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "N/A", Mayhem: "EXCITED"},

	{ID: 39, Title: "Cat Fishing", Location: "Somewhere with water",
		Description: "Fish with cat toy as bait, say \"here kitty kitty\".",
		ProofHint:   "Video of you fishing with cat toy (toy doesn't need to go in water)",
		Hashtag:     "#missionmischiefcatfishing", BadgeGroup: "catfish", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "N/A", Mayhem: "BLANK STARE"},
	{ID: 40, Title: "Cat Shelter", Location: "Animal Shelter",
		Description: "Take cat toy to animal shelter",
		ProofHint:   "Photo holding toy outside shelter with shelter name visible",
		Hashtag:     "#missionmischiefcatshelter", BadgeGroup: "catfish", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Leave on chair or table in waiting room", Mayhem: "EXCITED"},

	{ID: 41, Title: "Googley Eyes Buy", Location: "Store",
		Description: "Buy googley eyes",
		ProofHint:   "Photo with googley eyes",
		Hashtag:     "#missionmischiefgoogley", BadgeGroup: "eyes", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "Leave card where you got the eyes", Mayhem: "EXCITED"},
	{ID: 42, Title: "Fridge Eyes", Location: "Home",
		Description: "Put googley eyes on 5 refrigerator items",
		ProofHint:   "Photo of 5 items in refrigerator together with googley eyes",
		Hashtag:     "#missionmischieffridgeeyes", BadgeGroup: "eyes", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "N/A", Mayhem: "EXCITED"},

	{ID: 43, Title: "Suspect", Location: "Store",
		Description: "Buy only tube socks and lotion",
		ProofHint:   "Photo holding lotion and socks with big smile, store name on building behind you",
		Hashtag:     "#missionmischiefsuspect", BadgeGroup: "ghost", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "Give card to cashier", Mayhem: "BLANK STARE"},
	{ID: 44, Title: "Sock Puppet Show", Location: "Anywhere",
		Description: "Make sock puppet, perform 10 second skit (need inspiration, watch lambchop)",
		ProofHint:   "Video of puppet skit",
		Hashtag:     "#missionmischiefsockpuppet", BadgeGroup: "ghost", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "N/A", Mayhem: "EXCITED"},

	{ID: 45, Title: "Dobby", Location: "Public",
		Description: "Put card in a sock, hand to a stranger and walk away",
		ProofHint:   "Video of handing sock, walking away, stranger's response",
		Hashtag:     "#missionmischiefdobby", BadgeGroup: "slide", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "Card in sock", Mayhem: "BLANK STARE"},
	{ID: 46, Title: "Dobby Donation", Location: "Salvation Army",
		Description: "Donate socks and lotion to Salvation Army with card in sock",
		ProofHint:   "Photo of receipt",
		Hashtag:     "#missionmischiefdobbydonation", BadgeGroup: "slide", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Card in sock", Mayhem: "EXCITED"},

	{ID: 47, Title: "Mission Haiku", Location: "Anywhere",
		Description: "Make up haiku about a mission you did, read dramatically",
		ProofHint:   "Video of you reading haiku dramatically",
		Hashtag:     "#missionmischiefhaiku", BadgeGroup: "note", Kind: MissionKindPrank,
		Points: FixedPoints(3, "3"), CardDrop: "N/A", Mayhem: "EXCITED"},
	{ID: 48, Title: "Ransom Note Haiku", Location: "Gym",
		Description: "Cut out magazine letters for haiku, glue to paper, post at gym",
		ProofHint:   "Photo of clipped haiku posted at gym with your card attached",
		Hashtag:     "#missionmischiefrandsomnote", BadgeGroup: "note", Kind: MissionKindGoodwill,
		Points: FixedPoints(3, "3"), CardDrop: "Pin with Haiku on gym bulletin board", Mayhem: "EXCITED"},

	{ID: 49, Title: "Dog Bounty Hunter", Location: "Anywhere",
		Description: "Find another player's card in the wild",
		ProofHint:   "Photo of card with QR and player info visible",
		Hashtag:     "#missionmischiefdog", BadgeGroup: "bounty", Kind: MissionKindSpecial,
		Points: FixedPoints(10, "10"), CardDrop: "N/A (found card mission)", Mayhem: "EXCITED"},

	{ID: 50, Title: "Finish Line - Card Retrieval", Location: "Multiple previous mission locations",
		Description: "(Requires all missions completed) Return to all locations where you dropped cards and try to retrieve them. Document your journey and stories of who found them.",
		ProofHint:   "Video showing each location revisited and cards found",
		Hashtag:     "#missionmischieffinishline", BadgeGroup: "crown", Kind: MissionKindSpecial,
		Points: VariablePoints(1, 50, "1pt per card"), CardDrop: "N/A (retrieval mission)", Mayhem: "EXCITED"},
}
