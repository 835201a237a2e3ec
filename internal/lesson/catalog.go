// Package lesson holds the static beginner curriculum: ten vocabulary
// lessons for Uzbek speakers, the tutoring policy sent to the service, and
// the study-sheet export.
package lesson

// Word is one vocabulary entry with its Uzbek translation and usage note.
type Word struct {
	Term        string
	Translation string
	Note        string
}

// Example is a sample sentence pair.
type Example struct {
	English string
	Uzbek   string
}

// Lesson is one curriculum unit. Title and Topic feed the outbound tutoring
// commands verbatim, so they stay in the original bilingual form.
type Lesson struct {
	ID       int
	Title    string
	Topic    string
	Words    []Word
	Examples []Example
}

// All returns the curriculum in teaching order.
func All() []Lesson { return catalog }

// ByID returns the lesson with the given id.
func ByID(id int) (Lesson, bool) {
	for _, l := range catalog {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

var catalog = []Lesson{
	{
		ID:    1,
		Title: "1-DARS: Salomlashish (Greetings)",
		Topic: "Greetings and Introductions",
		Words: []Word{
			{"Hello", "Salom", "Universal salomlashish so'zi. Har qanday vaziyatda ishlatish mumkin."},
			{"Hi", "Salom", "Norasmiy salomlashish. Faqat do'stlar va tengdoshlar bilan ishlatiladi."},
			{"Good morning", "Xayrli tong", "Ertalabdan tushgacha (soat 12:00 gacha) ishlatiladi."},
			{"Good afternoon", "Xayrli kun", "Tushdan keyin (soat 12:00 dan 17:00 gacha) ishlatiladi."},
			{"Good evening", "Xayrli kech", "Kechqurun (soat 17:00 dan keyin) ko'rishganda aytiladi."},
			{"My name is...", "Mening ismim...", "O'zingizni tanishtirish uchun ishlatiladi."},
			{"Nice to meet you", "Tanishganimdan xursandman", "Birinchi marta ko'rishganda aytiladigan xushmuomala ibora."},
			{"How are you?", "Qalaysiz? / Ishlar yaxshimi?", "Hol-ahvol so'rash uchun ishlatiladi."},
			{"I am fine", "Men yaxshiman", "'How are you?' savoliga javob."},
			{"Thank you", "Rahmat", "Minnatdorchilik bildirishning rasmiy usuli."},
			{"You are welcome", "Arzimaydi", "'Thank you' ga javoban aytiladi."},
			{"Goodbye", "Xayr", "Rasmiy xayrlashuv so'zi."},
			{"See you", "Ko'rishguncha", "Do'stlar bilan xayrlashganda ishlatiladi."},
		},
		Examples: []Example{
			{"Hello, my name is Akmal.", "Salom, mening ismim Akmal."},
			{"Good morning, teacher!", "Xayrli tong, ustoz!"},
			{"How are you? - I am fine, thank you.", "Qalaysiz? - Men yaxshiman, rahmat."},
			{"Nice to meet you, goodbye!", "Tanishganimdan xursandman, xayr!"},
		},
	},
	{
		ID:    2,
		Title: "2-DARS: Sonlar va Ranglar (Numbers & Colors)",
		Topic: "Numbers (1-10) and Basic Colors",
		Words: []Word{
			{"One", "Bir", "'W' tovushi bilan aytiladi (wan)."},
			{"Two", "Ikki", "'T' harfini kuchli nafas bilan ayting."},
			{"Three", "Uch", "'Th' tovushi uchun tilni tishlar orasiga qo'yib havo chiqaring."},
			{"Four", "To'rt", "'R' harfi deyarli eshitilmaydi (fo:)."},
			{"Five", "Besh", "'V' tovushi jarangli bo'lishi kerak."},
			{"Six", "Olti", "Oxiridagi 'x' (ks) aniq aytiladi."},
			{"Seven", "Yetti", "Ikki bo'g'inli so'z: Se-ven."},
			{"Eight", "Sakkiz", "'Gh' harflari o'qilmaydi (eyt)."},
			{"Nine", "To'qqiz", "Oxiridagi 'n' aniq aytiladi."},
			{"Ten", "O'n", "Qisqa va aniq aytiladi."},
			{"Red", "Qizil", "'R' harfi yumshoq talaffuz qilinadi."},
			{"Blue", "Ko'k", "Uzun 'u' tovushi bilan (bluu)."},
			{"Green", "Yashil", "Cho'ziq 'iy' tovushi (griin)."},
			{"Yellow", "Sariq", "'Y' harfi o'zbekcha 'y' kabi."},
			{"Black", "Qora", "Keng 'a' tovushi bilan."},
			{"White", "Oq", "'H' harfi deyarli o'qilmaydi."},
		},
		Examples: []Example{
			{"One red apple.", "Bitta qizil olma."},
			{"The sky is blue.", "Osmon ko'k rangda."},
			{"I see three green cars.", "Men uchta yashil mashinani ko'ryapman."},
			{"My cat is black and white.", "Mening mushugim qora va oq."},
		},
	},
	{
		ID:    3,
		Title: "3-DARS: Oila (Family)",
		Topic: "Family Members",
		Words: []Word{
			{"Family", "Oila", "Umumiy oila tushunchasi."},
			{"Mother", "Ona", "Rasmiy so'z. Qisqartmasi: Mom."},
			{"Father", "Ota", "Rasmiy so'z. Qisqartmasi: Dad."},
			{"Sister", "Opa/Singil", "Ingliz tilida opa va singil bir xil ataladi."},
			{"Brother", "Aka/Uka", "Ingliz tilida aka va uka bir xil ataladi."},
			{"Grandmother", "Buvi", "Qisqartmasi: Grandma."},
			{"Grandfather", "Bobo", "Qisqartmasi: Grandpa."},
			{"Parents", "Ota-ona", "Ota va onani birgalikda aytganda."},
			{"Son", "O'g'il farzand", "Quyosh (Sun) so'zi bilan bir xil o'qiladi."},
			{"Daughter", "Qiz farzand", "'Gh' o'qilmaydi (do:ter)."},
			{"Baby", "Chaqaloq", "Jinsidan qat'i nazar ishlatiladi."},
		},
		Examples: []Example{
			{"This is my mother.", "Bu mening onam."},
			{"I love my family.", "Men oilamni yaxshi ko'raman."},
			{"My brother is tall.", "Mening akam (ukam) baland bo'yli."},
			{"Grandmother and Grandfather are happy.", "Buvim va bobom xursandlar."},
		},
	},
	{
		ID:    4,
		Title: "4-DARS: Maktab (School)",
		Topic: "School Items and Places",
		Words: []Word{
			{"School", "Maktab", "Bolalar o'qiydigan joy."},
			{"Teacher", "O'qituvchi", "Dars beradigan shaxs. Rasmiy so'z."},
			{"Student", "O'quvchi", "Maktabda o'qiydigan bola."},
			{"Classroom", "Sinf xonasi", "Dars o'tiladigan xona."},
			{"Book", "Kitob", "O'qish uchun ishlatiladigan narsa."},
			{"Pen", "Ruchka", "Yozish uchun ishlatiladigan vosita."},
			{"Pencil", "Qalam", "Yozish va chizish uchun."},
			{"Notebook", "Daftar", "Yozuv daftari."},
			{"Desk", "Parta", "O'quvchilar o'tiradigan stol."},
			{"Board", "Doska", "O'qituvchi yozadigan doska. Blackboard yoki Whiteboard."},
			{"Homework", "Uy vazifasi", "Uyda bajariladigan topshiriq."},
			{"Lesson", "Dars", "Bir mavzu bo'yicha o'tiladigan mashg'ulot."},
		},
		Examples: []Example{
			{"I go to school every day.", "Men har kuni maktabga boraman."},
			{"The teacher is in the classroom.", "O'qituvchi sinf xonasida."},
			{"Open your book, please.", "Iltimos, kitobingizni oching."},
			{"I write with a pen.", "Men ruchka bilan yozaman."},
			{"Did you do your homework?", "Uy vazifangizni bajardingizmi?"},
		},
	},
	{
		ID:    5,
		Title: "5-DARS: Ovqatlar (Food)",
		Topic: "Food and Drinks",
		Words: []Word{
			{"Food", "Ovqat/Taom", "Umumiy ovqat tushunchasi."},
			{"Water", "Suv", "Ichimlik. 'W' harfi bilan boshlanadi."},
			{"Bread", "Non", "Asosiy oziq-ovqat mahsuloti."},
			{"Rice", "Guruch/Palov", "O'zbek oshining asosi."},
			{"Meat", "Go'sht", "Oqsilga boy oziq-ovqat."},
			{"Chicken", "Tovuq", "Tovuq go'shti."},
			{"Fish", "Baliq", "Suvda yashovchi hayvon go'shti."},
			{"Egg", "Tuxum", "Tovuq tuxumi."},
			{"Milk", "Sut", "Oq rang ichimlik, sigirdan olinadi."},
			{"Tea", "Choy", "Issiq ichimlik. O'zbeklar ko'p ichadi."},
			{"Juice", "Sharbat", "Mevalardan tayyorlangan ichimlik."},
			{"Apple", "Olma", "Qizil yoki yashil meva."},
			{"Banana", "Banan", "Sariq tropik meva."},
			{"Vegetable", "Sabzavot", "O'simlik oziq-ovqatlari."},
		},
		Examples: []Example{
			{"I drink water every day.", "Men har kuni suv ichaman."},
			{"Bread and tea for breakfast.", "Nonushta uchun non va choy."},
			{"I like chicken and rice.", "Men tovuq va guruchni yoqtiraman."},
			{"Would you like some juice?", "Sharbat ichasizmi?"},
			{"Vegetables are healthy.", "Sabzavotlar foydali."},
		},
	},
	{
		ID:    6,
		Title: "6-DARS: Hayvonlar (Animals)",
		Topic: "Domestic and Wild Animals",
		Words: []Word{
			{"Animal", "Hayvon", "Umumiy hayvon tushunchasi."},
			{"Dog", "It", "Eng sodiq uy hayvoni."},
			{"Cat", "Mushuk", "Kichik uy hayvoni, miyovlaydi."},
			{"Bird", "Qush", "Uchuvchi hayvon."},
			{"Cow", "Sigir", "Sut beradigan yirik hayvon."},
			{"Horse", "Ot", "Minib yuriladigan hayvon."},
			{"Sheep", "Qo'y", "Jun va go'sht uchun boqiladi."},
			{"Chicken", "Tovuq", "Tuxum beradigan parrandalar."},
			{"Fish", "Baliq", "Suvda yashaydigan hayvon."},
			{"Lion", "Sher", "Hayvonlar shohi, yirtqich."},
			{"Elephant", "Fil", "Eng katta quruqlik hayvoni."},
			{"Monkey", "Maymun", "Daraxtlarda yashovchi hayvon."},
			{"Snake", "Ilon", "Oyoqsiz sudralib yuruvchi."},
			{"Rabbit", "Quyon", "Uzun quloqli kichik hayvon."},
		},
		Examples: []Example{
			{"I have a dog.", "Mening itim bor."},
			{"The cat is sleeping.", "Mushuk uxlayapti."},
			{"Birds can fly.", "Qushlar ucha oladi."},
			{"The lion is the king of animals.", "Sher hayvonlar shohi."},
			{"Elephants are very big.", "Fillar juda katta."},
		},
	},
	{
		ID:    7,
		Title: "7-DARS: Kiyimlar (Clothes)",
		Topic: "Clothing and Accessories",
		Words: []Word{
			{"Clothes", "Kiyim-kechak", "Umumiy kiyim tushunchasi."},
			{"Shirt", "Ko'ylak", "Erkaklar kiyimi, tugmali."},
			{"T-shirt", "Futbolka", "Yengil sport kiyimi."},
			{"Pants", "Shim", "Oyoqqa kiyiladigan kiyim. Trousers ham deyiladi."},
			{"Dress", "Ko'ylak (ayollar)", "Ayollar va qizlar kiyimi."},
			{"Jacket", "Kurtka", "Sovuqda kiyiladigan ustki kiyim."},
			{"Coat", "Palto", "Qishki ustki kiyim."},
			{"Shoes", "Poyabzal/Tufli", "Oyoqqa kiyiladi."},
			{"Socks", "Paypoq", "Oyoqqa, poyabzal ichiga kiyiladi."},
			{"Hat", "Shapka/Qalpoq", "Boshga kiyiladi."},
			{"Scarf", "Sharf/Ro'mol", "Bo'yinga o'raladi."},
			{"Gloves", "Qo'lqop", "Qo'llarga kiyiladi, sovuqdan himoya."},
		},
		Examples: []Example{
			{"I wear a shirt to school.", "Men maktabga ko'ylak kiyaman."},
			{"Put on your jacket, it's cold.", "Kurtkangni kiy, sovuq."},
			{"These shoes are new.", "Bu poyabzallar yangi."},
			{"She is wearing a beautiful dress.", "U chiroyli ko'ylak kiygan."},
			{"Don't forget your hat!", "Shapkangni unutma!"},
		},
	},
	{
		ID:    8,
		Title: "8-DARS: Uy va Mebel (Home & Furniture)",
		Topic: "Home, Rooms and Furniture",
		Words: []Word{
			{"House", "Uy", "Yashash joyi."},
			{"Room", "Xona", "Uyning bir qismi."},
			{"Kitchen", "Oshxona", "Ovqat pishiriladigan xona."},
			{"Bedroom", "Yotoq xonasi", "Uxlaydigan xona."},
			{"Bathroom", "Hammom", "Yuvinish xonasi."},
			{"Living room", "Mehmonxona", "Oila yig'iladigan katta xona."},
			{"Door", "Eshik", "Xonaga kirish joyi."},
			{"Window", "Deraza", "Yorug'lik kiradigan joy."},
			{"Table", "Stol", "Ovqat yeyiladigan mebel."},
			{"Chair", "Stul", "O'tiradigan mebel."},
			{"Bed", "Karavot/To'shak", "Uxlaydigan mebel."},
			{"Sofa", "Divan", "Yumshoq o'rindiq, ko'p kishilik."},
		},
		Examples: []Example{
			{"Welcome to my house!", "Mening uyimga xush kelibsiz!"},
			{"The kitchen is clean.", "Oshxona toza."},
			{"I sleep in my bedroom.", "Men yotoq xonamda uxlayman."},
			{"Please, sit on the chair.", "Iltimos, stulga o'tiring."},
			{"Open the window, please.", "Iltimos, derazani oching."},
		},
	},
	{
		ID:    9,
		Title: "9-DARS: Kasb-hunarlar (Jobs)",
		Topic: "Professions and Occupations",
		Words: []Word{
			{"Job", "Ish/Kasb", "Umumiy kasb tushunchasi. Work ham deyiladi."},
			{"Doctor", "Shifokor", "Bemorlarni davolovchi mutaxassis."},
			{"Nurse", "Hamshira", "Shifokorga yordam beruvchi."},
			{"Teacher", "O'qituvchi", "Maktabda dars beruvchi."},
			{"Engineer", "Muhandis", "Texnik mutaxassis."},
			{"Driver", "Haydovchi", "Transport haydovchisi."},
			{"Police officer", "Politsiyachi", "Tartibni saqlaydi."},
			{"Firefighter", "O't o'chiruvchi", "Yong'inlarni o'chiradi."},
			{"Cook", "Oshpaz", "Ovqat pishiradigan mutaxassis. Chef ham deyiladi."},
			{"Farmer", "Fermer/Dehqon", "Qishloq xo'jaligida ishlovchi."},
			{"Pilot", "Uchuvchi", "Samolyot boshqaruvchisi."},
			{"Builder", "Quriluvchi", "Uylar quradigan ishchi."},
		},
		Examples: []Example{
			{"My father is a doctor.", "Mening otam shifokor."},
			{"I want to be a pilot.", "Men uchuvchi bo'lishni xohlayman."},
			{"The teacher is very kind.", "O'qituvchi juda mehribon."},
			{"Police officers help people.", "Politsiyachilar odamlarga yordam beradi."},
			{"What is your job?", "Sizning kasbingiz nima?"},
		},
	},
	{
		ID:    10,
		Title: "10-DARS: Vaqt va Kunlar (Time & Days)",
		Topic: "Days of the Week and Time",
		Words: []Word{
			{"Time", "Vaqt", "Umumiy vaqt tushunchasi."},
			{"Day", "Kun", "24 soatlik davr."},
			{"Week", "Hafta", "7 kunlik davr."},
			{"Monday", "Dushanba", "Haftaning birinchi kuni."},
			{"Tuesday", "Seshanba", "Haftaning ikkinchi kuni."},
			{"Wednesday", "Chorshanba", "Haftaning uchinchi kuni."},
			{"Thursday", "Payshanba", "Haftaning to'rtinchi kuni."},
			{"Friday", "Juma", "Haftaning beshinchi kuni."},
			{"Saturday", "Shanba", "Dam olish kuni boshlanishi."},
			{"Sunday", "Yakshanba", "Haftaning oxirgi kuni."},
			{"Today", "Bugun", "Hozirgi kun."},
			{"Tomorrow", "Ertaga", "Keyingi kun."},
			{"Yesterday", "Kecha", "O'tgan kun."},
			{"Hour", "Soat", "60 daqiqalik vaqt birligi."},
		},
		Examples: []Example{
			{"What time is it?", "Soat necha?"},
			{"Today is Monday.", "Bugun dushanba."},
			{"I go to school from Monday to Friday.", "Men dushanbadan jumagacha maktabga boraman."},
			{"Saturday and Sunday are weekends.", "Shanba va yakshanba dam olish kunlari."},
			{"See you tomorrow!", "Ertagacha ko'rishguncha!"},
		},
	},
}
