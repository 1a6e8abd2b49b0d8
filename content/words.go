// Word lists for procedurally generated names.
package content

var minionPrefixes = []string{
	"Feral", "Rabid", "Unhinged", "Gourmet", "Salty", "Greasy", "Rotten", "Ancient", "Radioactive",
	"Cursed", "Demonic", "Mutant", "Slimy", "Hairy", "Bald", "Screaming", "Silent", "Dancing",
	"Drunken", "Stinky", "Spicy", "Crispy", "Frozen", "Burning", "Void", "Cosmic", "Glitchy",
	"Upside-down", "Tiny", "Giant", "Fat", "Skinny", "Ugly", "Pretty", "Deadly", "Friendly",
}

var minionNames = []string{
	"Glarb", "Mork", "Ziltoid", "Bob 2", "Kevin", "Susan", "Chomp", "Gnash", "Slurp", "Drool", "Fist",
	"Claw", "Tooth", "Gut", "Belly", "Nose", "Ear", "Eye", "Brain", "Foot", "Toe", "Hand", "Arm",
	"Leg", "Knee", "Elbow", "Neck", "Spine", "Rib", "Skull", "Bone", "Blood",
}

var minionTitles = []string{
	"the Devourer", "the Cook", "the Butcher", "the Hunter", "the Slicer", "the Dicer", "the Masher",
	"the Basher", "the Crusher", "the Smusher", "the Squasher", "the Splasher", "the Trasher",
	"the Washer", "the Cleaner", "the Eater", "the Chewer", "the Swallower", "the Biter",
	"the Licker", "the Sniffer", "the Smeller", "the Taster", "the Toucher", "the Feeler",
}

var minionDescriptions = []string{
	"Has too many teeth.", "Smells like old socks.", "Drools constantly.", "Loves the taste of fear.",
	"Cooks with passion and rage.", "Hunts with a rusty spoon.",
	"Is actually just three raccoons in a trench coat.", "Wants to be a dentist.",
	"Is afraid of the dark.", "Glows in the dark.", "Vibrates intensely.", "Speaks in math.",
	"Only eats left hands.", "Hates mondays.", "Loves lasagna.", "Is a verified influencer.",
	"Has a PhD in pain.", "Was once a hamster.", "Is made of jelly.", "Is on fire.",
}

var feederTitles = []string{
	"the Spoon", "the Feeder", "the Nurse", "the Stuffer", "the Glutton", "the Mama",
}

var feederDescriptions = []string{
	"Here comes the airplane!", "Force feeds with love.", "Hates empty stomachs.",
	"Uses a shovel to feed.", "Whispers 'eat more' constantly.", "Has a baby bib.",
	"Carries a massive ladle.",
}

var leechTitles = []string{
	"the Leech", "the Sucker", "the Parasite", "the Tick", "the Mosquito", "the Drain",
}

var leechDescriptions = []string{
	"Sucks.", "Very clingy.", "Hungry for red stuff.", "Leaves a mark.", "Don't let it touch you.",
	"Squishy.",
}

var adjectives = []string{
	"Rusty", "Slimy", "Cursed", "Moldy", "Sharp", "Spiky", "Golden", "Ancient", "Radioactive",
	"Demonic", "Soggy", "Greasy", "Wobbling", "Forbidden", "Haunted", "Vibrating", "Invisible",
	"Heavy", "Sentient", "Screaming", "Sticky", "Frozen", "Burning", "Toxic", "Void", "Cosmic",
	"Unholy", "Divine", "Glitched",
}

var huntNouns = []string{
	"Net", "Trap", "Lure", "Hook", "Sneakers", "Camo", "Drone", "Pit", "Tranquilizer", "Lasso",
	"Sack", "Glove", "Radar", "Whistle", "Bait", "Cage",
}

var meatNouns = []string{
	"Spork", "Cleaver", "Grinder", "Slicer", "Tenderizer", "Knife", "Chainsaw", "Blender", "Axe",
	"Saw", "Machete", "Scissors", "Scalpel", "Dagger",
}

var hpNouns = []string{
	"Stomach", "Vitamin", "Pill", "Armor", "Helmet", "Shield", "Skin", "Heart", "Liver", "Bandage",
	"Elixir", "Tonic", "Mutagen", "DNA",
}

var coinNouns = []string{
	"Spice", "Sauce", "Salt", "Pepper", "Plate", "Napkin", "Bib", "Table", "Menu", "Wallet", "Bank",
	"Investment", "Contract", "Logo",
}
