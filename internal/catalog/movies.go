package catalog

// Movies lists the poster catalog in display order.
var Movies = []string{
	"ARRahman",
	"Thani Oruvan",
	"aadukalam",
	"Aaranya Kaandam",
	"Jeeva",
	"Jigarthanda",
	"Magamuni",
	"Vikram Vedha",
	"Mayakkam enna",
	"Pudhupettai",
	"Mahaan",
	"Indru Netru Naalai",
	"Madrasapattinam",
	"Sathuranga Vettai",
	"Ayan",
	"Yuvan",
	"Kattradhu thamizh",
	"Mounam Pesiyadhe",
	"Polladhavan",
	"Thiruchitrambalam",
	"KaKaPo",
	"Aayirathil Oruvan",
	"Nayagan",
	"96-The life of Ram",
}

// Descriptions holds the HTML product copy for each entry in Movies.
var Descriptions = map[string]string{
	"ARRahman": `<p>Celebrate the magic of <strong>A.R. Rahman</strong> with this tribute poster featuring the Maestro who redefined Indian music. From Roja to Rockstar, this artwork captures his timeless legacy.</p>
<p>Perfect for music lovers, studio walls, or as a gift for fans of soulful, groundbreaking soundscapes.</p>`,
	"Thani Oruvan": `<p><strong>Thani Oruvan</strong> – a poster for the sharp minds. Featuring the iconic clash between Mithran and Siddharth Abhimanyu, this design embodies the film’s cerebral brilliance and visual flair.</p>
<p>A must-have for lovers of Tamil thrillers and smart storytelling.</p>`,
	"aadukalam": `<p>This <strong>Aadukalam</strong> poster is a tribute to raw storytelling and rooted emotions. Capturing the soul of Madurai and Dhanush’s award-winning performance, it brings rural energy to your wall.</p>
<p>Ideal for collectors and fans of rustic, grounded cinema.</p>`,
	"Aaranya Kaandam": `<p>Own a piece of neo-noir brilliance with the <strong>Aaranya Kaandam</strong> poster. Bold, stylized, and edgy — just like the cult classic it represents.</p>
<p>For fans of genre-defying films and dark storytelling.</p>`,
	"Jeeva": `<p><strong>Jeeva</strong> poster captures the emotion and ambition of a cricketer fighting odds. With vibrant tones and sporty charm, it celebrates dreams and drama.</p>
<p>Perfect for cricket lovers and cinema fans alike.</p>`,
	"Jigarthanda": `<p>This <strong>Jigarthanda</strong> poster captures the madness, meta-cinema, and mass appeal of one of Tamil cinema’s most inventive films.</p>
<p>Dark comedy meets gangster grit — hang this if you like your cinema unpredictable.</p>`,
	"Magamuni": `<p><strong>Magamuni</strong> — a tale of duality and fate. This poster distills the film’s intense performances and brooding tone into a minimalist, thought-provoking design.</p>
<p>For fans of layered storytelling and social realism.</p>`,
	"Vikram Vedha": `<p>Inspired by myth and morality, the <strong>Vikram Vedha</strong> poster features the iconic face-off between law and chaos.</p>
<p>Striking visual composition, perfect for fans of action thrillers with brains.</p>`,
	"Mayakkam enna": `<p><strong>Mayakkam Enna</strong> — this poster channels passion, pain, and the pursuit of art. A tribute to the rawest Dhanush performance and GVM’s melancholic direction.</p>
<p>Ideal for romantics, artists, and dreamers.</p>`,
	"Pudhupettai": `<p><strong>Pudhupettai</strong> is more than a gangster film — it’s an emotion. This poster embodies Selvaraghavan's dark, ambitious world and Dhanush’s unforgettable transformation.</p>
<p>Hang it if you love flawed characters and fearless cinema.</p>`,
	"Mahaan": `<p>The <strong>Mahaan</strong> poster salutes a father-son tale layered with freedom, rebellion, and redemption. With gritty textures and bold strokes, it reflects the film’s larger-than-life feel.</p>
<p>Great for fans of stylish, high-concept storytelling.</p>`,
	"Indru Netru Naalai": `<p><strong>Indru Netru Naalai</strong> — a time travel gem. This poster brings out the quirky sci-fi charm of one of Tamil cinema’s rare genre experiments.</p>
<p>Smart, funny, and futuristic — a wall piece that sparks curiosity.</p>`,
	"Madrasapattinam": `<p>This elegant <strong>Madrasapattinam</strong> poster captures the romantic period drama set in pre-independence India. Vintage tones, royal vibes.</p>
<p>Perfect for those who love history, romance, and artful cinema.</p>`,
	"Sathuranga Vettai": `<p><strong>Sathuranga Vettai</strong> — conmen, capitalism, and karma. This poster embodies wit and grit, much like its sharp screenplay.</p>
<p>Display it if you love hustle-themed thrillers with a conscience.</p>`,
	"Ayan": `<p>The <strong>Ayan</strong> poster is a tribute to adrenaline, style, and Surya’s magnetic screen presence. It radiates action and ambition in every inch.</p>
<p>A visual stunner for lovers of sleek Tamil commercial cinema.</p>`,
	"Yuvan": `<p>Celebrate the rebel rhythm of <strong>Yuvan Shankar Raja</strong> — a poster for those who grew up vibing to youth anthems and background score magic.</p>
<p>Perfect for music studios, chill corners, and Yuvan fans worldwide.</p>`,
	"Kattradhu thamizh": `<p><strong>Kattradhu Thamizh</strong> — a cult classic on identity, intellect, and isolation. This poster captures the haunting solitude and poetic anger of the film.</p>
<p>Not just decor — a conversation piece.</p>`,
	"Mounam Pesiyadhe": `<p>This <strong>Mounam Pesiyadhe</strong> poster is an ode to quiet romance and subtle storytelling. Calm, composed, and classic — just like the film.</p>
<p>For those who love minimalism in cinema and in life.</p>`,
	"Polladhavan": `<p><strong>Polladhavan</strong> poster celebrates the film that turned a bike into a plot device. Raw, urban, and rooted in real-world tension.</p>
<p>A must for fans of grounded action and Dhanush’s breakout vibe.</p>`,
	"Thiruchitrambalam": `<p>This feel-good <strong>Thiruchitrambalam</strong> poster brings warmth, family, and food to your walls. Gentle hues and everyday charm.</p>
<p>Ideal for modern romantics and cozy corners.</p>`,
	"KaKaPo": `<p><strong>Kaaka Muttai</strong> — innocence, irony, and aspiration. This poster captures the heart of one of Tamil cinema’s most tender stories.</p>
<p>Display it with pride, for its heart is as big as its message.</p>`,
	"Aayirathil Oruvan": `<p>Wild, ambitious, and ahead of its time — this <strong>Aayirathil Oruvan</strong> poster is for true-blue fans of epic, experimental cinema.</p>
<p>Add it to your collection if you love the weird and the wonderful.</p>`,
	"Nayagan": `<p><strong>Nayagan</strong> — the poster of a legend. Minimal yet powerful, this design salutes Kamal Haasan’s iconic performance and Mani Ratnam’s mastery.</p>
<p>Timeless cinema deserves a timeless spot on your wall.</p>`,
	"96-The life of Ram": `<p><strong>96</strong> — pure nostalgia. This poster evokes school crushes, bus rides, and unspoken words. Soft tones, soft hearts.</p>
<p>A must-have for every 90s kid and hopeless romantic.</p>`,
}
