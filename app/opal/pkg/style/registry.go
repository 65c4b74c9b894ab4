package style

// registry 固定顺序的风格目录，第一个为默认风格
var registry = []Style{
	{
		ID: "monet", Name: "Impressionist Morning", Painter: "Claude Monet",
		Colors: Colors{Background: "bg-blue-50", Surface: "bg-blue-100", Text: "text-slate-700", Accent: "text-pink-400", Secondary: "bg-green-100", Border: "border-blue-200"},
		Font:   FontSerif, Radius: "rounded-xl", BorderWidth: "border-2", Shadow: "shadow-lg shadow-blue-200/50",
	},
	{
		ID: "mondrian", Name: "Neoplasticism Grid", Painter: "Piet Mondrian",
		Colors: Colors{Background: "bg-white", Surface: "bg-white", Text: "text-black", Accent: "text-red-600", Secondary: "bg-yellow-400", Border: "border-black"},
		Font:   FontSans, Radius: "rounded-none", BorderWidth: "border-4", Shadow: "shadow-none",
	},
	{
		ID: "vangogh", Name: "Starry Night", Painter: "Vincent Van Gogh",
		Colors: Colors{Background: "bg-slate-900", Surface: "bg-blue-900", Text: "text-yellow-100", Accent: "text-yellow-400", Secondary: "bg-blue-800", Border: "border-yellow-600"},
		Font:   FontSerif, Radius: "rounded-lg", BorderWidth: "border-4", Shadow: "shadow-[0_0_15px_rgba(250,204,21,0.5)]",
		Dark: true,
	},
	{
		ID: "picasso", Name: "Cubist Fragment", Painter: "Pablo Picasso",
		Colors: Colors{Background: "bg-orange-50", Surface: "bg-amber-100", Text: "text-gray-900", Accent: "text-blue-600", Secondary: "bg-orange-200", Border: "border-gray-800"},
		Font:   FontSans, Radius: "rounded-sm", BorderWidth: "border-r-8 border-b-8 border-t-2 border-l-2", Shadow: "shadow-xl",
	},
	{
		ID: "hokusai", Name: "Great Wave", Painter: "Katsushika Hokusai",
		Colors: Colors{Background: "bg-cyan-50", Surface: "bg-white", Text: "text-slate-800", Accent: "text-blue-700", Secondary: "bg-blue-100", Border: "border-blue-900"},
		Font:   FontSerif, Radius: "rounded-[2rem]", BorderWidth: "border", Shadow: "shadow-blue-900/20",
	},
	{
		ID: "warhol", Name: "Pop Art Factory", Painter: "Andy Warhol",
		Colors: Colors{Background: "bg-pink-200", Surface: "bg-yellow-200", Text: "text-blue-900", Accent: "text-purple-600", Secondary: "bg-cyan-300", Border: "border-black"},
		Font:   FontMono, Radius: "rounded-none", BorderWidth: "border-4", Shadow: "shadow-[8px_8px_0px_0px_rgba(0,0,0,1)]",
	},
	{
		ID: "dali", Name: "Surreal Persistence", Painter: "Salvador Dalí",
		Colors: Colors{Background: "bg-orange-100", Surface: "bg-orange-50", Text: "text-amber-950", Accent: "text-orange-600", Secondary: "bg-amber-200", Border: "border-amber-800"},
		Font:   FontSerif, Radius: "rounded-[30%_70%_70%_30%_/_30%_30%_70%_70%]", BorderWidth: "border", Shadow: "shadow-2xl",
	},
	{
		ID: "kandinsky", Name: "Abstract Composition", Painter: "Wassily Kandinsky",
		Colors: Colors{Background: "bg-white", Surface: "bg-gray-50", Text: "text-gray-900", Accent: "text-red-500", Secondary: "bg-blue-500", Border: "border-gray-300"},
		Font:   FontSans, Radius: "rounded-full", BorderWidth: "border-2", Shadow: "shadow-lg",
	},
	{
		ID: "basquiat", Name: "Neo-Expressionist", Painter: "Jean-Michel Basquiat",
		Colors: Colors{Background: "bg-stone-200", Surface: "bg-stone-100", Text: "text-black", Accent: "text-red-600", Secondary: "bg-yellow-500", Border: "border-black"},
		Font:   FontMono, Radius: "rounded-sm", BorderWidth: "border-dashed border-2", Shadow: "shadow-none",
	},
	{
		ID: "okeeffe", Name: "Desert Flower", Painter: "Georgia O'Keeffe",
		Colors: Colors{Background: "bg-rose-50", Surface: "bg-white", Text: "text-stone-700", Accent: "text-rose-400", Secondary: "bg-orange-100", Border: "border-rose-200"},
		Font:   FontSans, Radius: "rounded-3xl", BorderWidth: "border-0", Shadow: "shadow-[0_20px_50px_rgba(255,100,100,0.1)]",
	},
	{
		ID: "rothko", Name: "Color Field", Painter: "Mark Rothko",
		Colors: Colors{Background: "bg-orange-800", Surface: "bg-red-700", Text: "text-orange-50", Accent: "text-yellow-400", Secondary: "bg-red-900", Border: "border-transparent"},
		Font:   FontSans, Radius: "rounded-none", BorderWidth: "border-0", Shadow: "shadow-inner shadow-black/50",
		Dark: true,
	},
	{
		ID: "vermeer", Name: "Pearl Light", Painter: "Johannes Vermeer",
		Colors: Colors{Background: "bg-slate-800", Surface: "bg-slate-700", Text: "text-yellow-50", Accent: "text-blue-300", Secondary: "bg-yellow-700", Border: "border-slate-600"},
		Font:   FontSerif, Radius: "rounded-md", BorderWidth: "border", Shadow: "shadow-2xl shadow-black",
		Dark: true,
	},
	{
		ID: "kahlo", Name: "Viva La Vida", Painter: "Frida Kahlo",
		Colors: Colors{Background: "bg-green-700", Surface: "bg-green-600", Text: "text-pink-100", Accent: "text-pink-500", Secondary: "bg-red-500", Border: "border-green-400"},
		Font:   FontSans, Radius: "rounded-xl", BorderWidth: "border-4 border-double", Shadow: "shadow-lg",
		Dark: true,
	},
	{
		ID: "matisse", Name: "Paper Cutouts", Painter: "Henri Matisse",
		Colors: Colors{Background: "bg-blue-600", Surface: "bg-white", Text: "text-blue-900", Accent: "text-orange-500", Secondary: "bg-green-500", Border: "border-none"},
		Font:   FontSans, Radius: "rounded-3xl", BorderWidth: "border-0", Shadow: "shadow-none drop-shadow-lg",
	},
	{
		ID: "pollock", Name: "Action Drip", Painter: "Jackson Pollock",
		Colors: Colors{Background: "bg-stone-100", Surface: "bg-white", Text: "text-black", Accent: "text-stone-600", Secondary: "bg-stone-300", Border: "border-stone-400"},
		Font:   FontMono, Radius: "rounded-none", BorderWidth: "border", Shadow: "shadow-sm",
		Texture: "bg-[radial-gradient(circle,_rgba(0,0,0,0.08)_1px,_transparent_1px)] bg-[length:12px_12px]",
	},
	{
		ID: "klimt", Name: "Golden Kiss", Painter: "Gustav Klimt",
		Colors: Colors{Background: "bg-stone-900", Surface: "bg-stone-800", Text: "text-yellow-100", Accent: "text-yellow-400", Secondary: "bg-yellow-600", Border: "border-yellow-500"},
		Font:   FontSerif, Radius: "rounded-sm", BorderWidth: "border", Shadow: "shadow-[0_0_20px_rgba(234,179,8,0.3)]",
		Dark: true,
	},
	{
		ID: "hiroshige", Name: "Floating World", Painter: "Utagawa Hiroshige",
		Colors: Colors{Background: "bg-indigo-50", Surface: "bg-white", Text: "text-indigo-900", Accent: "text-red-500", Secondary: "bg-indigo-200", Border: "border-indigo-200"},
		Font:   FontSerif, Radius: "rounded-lg", BorderWidth: "border", Shadow: "shadow-md",
	},
	{
		ID: "mucha", Name: "Art Nouveau", Painter: "Alphonse Mucha",
		Colors: Colors{Background: "bg-amber-50", Surface: "bg-orange-50", Text: "text-amber-900", Accent: "text-amber-600", Secondary: "bg-emerald-100", Border: "border-amber-300"},
		Font:   FontSerif, Radius: "rounded-t-2xl rounded-b-lg", BorderWidth: "border-2", Shadow: "shadow-lg shadow-amber-900/10",
	},
	{
		ID: "turner", Name: "Light & Steam", Painter: "J.M.W. Turner",
		Colors: Colors{Background: "bg-stone-200", Surface: "bg-stone-100", Text: "text-stone-700", Accent: "text-orange-400", Secondary: "bg-yellow-100", Border: "border-stone-300"},
		Font:   FontSerif, Radius: "rounded-sm", BorderWidth: "border-0", Shadow: "blur-sm shadow-xl",
	},
	{
		ID: "caravaggio", Name: "Chiaroscuro", Painter: "Caravaggio",
		Colors: Colors{Background: "bg-black", Surface: "bg-gray-900", Text: "text-gray-100", Accent: "text-red-800", Secondary: "bg-gray-800", Border: "border-gray-700"},
		Font:   FontSerif, Radius: "rounded-sm", BorderWidth: "border", Shadow: "shadow-[0_0_50px_rgba(0,0,0,1)]",
		Dark: true,
	},
}

// Registry 返回风格目录的副本，顺序固定
func Registry() []Style {
	out := make([]Style, len(registry))
	copy(out, registry)
	return out
}

// Len 风格数量
func Len() int {
	return len(registry)
}

// At 按下标取风格，越界属于调用方错误
func At(i int) Style {
	return registry[i]
}

// Default 默认风格（目录第一项）
func Default() Style {
	return registry[0]
}

// Lookup 按 id 查找风格
func Lookup(id string) (Style, bool) {
	for _, s := range registry {
		if s.ID == id {
			return s, true
		}
	}
	return Style{}, false
}
