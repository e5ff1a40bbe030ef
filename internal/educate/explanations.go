package educate

import "github.com/finspeak/finspeak/internal/model"

// Built-in explanations, per canonical term and language register. These
// answer without any API configured and back up the LLM path.
var explanations = map[string]map[model.Language]string{
	"nav": {
		model.LangEnglish:  "NAV (Net Asset Value) is the per-unit price of a mutual fund. Think of it like the price of one share. If a fund's NAV is ₹50, you get one unit for ₹50.",
		model.LangHindi:    "NAV (Net Asset Value) ka matlab hai ek mutual fund unit ki keemat. Jaise ek share ka price hota hai, waise hi NAV ek unit ka price hai. Agar NAV ₹50 hai, toh ₹50 mein aapko ek unit milega.",
		model.LangHinglish: "NAV matlab Net Asset Value — basically ek unit ki price. Jaise ek share ka rate hota hai, waise hi NAV ek unit ka rate hai. NAV ₹50 hai toh ₹50 mein ek unit milega.",
	},
	"sip": {
		model.LangEnglish:  "SIP (Systematic Investment Plan) means investing a fixed amount every month in a mutual fund. Like a recurring deposit, but in mutual funds. Even ₹500/month can grow significantly over time.",
		model.LangHindi:    "SIP (Systematic Investment Plan) ka matlab hai har mahine ek fixed amount mutual fund mein invest karna. Jaise recurring deposit hota hai bank mein, waise hi SIP hota hai mutual fund mein. ₹500 per month se bhi shuruat kar sakte hain.",
		model.LangHinglish: "SIP matlab har month ek fixed amount invest karna mutual fund mein. Jaise RD hoti hai bank mein, waise hi SIP hoti hai. ₹500/month se bhi start kar sakte ho. Time ke saath bahut grow hota hai.",
	},
	"returns": {
		model.LangEnglish:  "Returns means how much profit your investment has made. If you invested ₹1000 and it became ₹1200, your return is 20%. Returns can be positive (profit) or negative (loss).",
		model.LangHindi:    "Returns ka matlab hai aapke investment ne kitna profit kamaya. Agar aapne ₹1000 lagaye aur woh ₹1200 ho gaye, toh aapka return 20% hai. Returns positive (profit) ya negative (loss) ho sakta hai.",
		model.LangHinglish: "Returns matlab aapke paison ne kitna kamaya. ₹1000 invest kiya, ₹1200 ho gaye — toh 20% return mila. Positive bhi ho sakta hai (profit) aur negative bhi (loss).",
	},
	"mutual fund": {
		model.LangEnglish:  "A mutual fund collects money from many investors and invests it in stocks, bonds, etc. A professional fund manager handles everything. You don't need to pick stocks yourself.",
		model.LangHindi:    "Mutual fund bahut saare logon se paisa collect karta hai aur usse stocks, bonds mein invest karta hai. Ek professional fund manager sab handle karta hai. Aapko khud stocks choose nahi karne padte.",
		model.LangHinglish: "Mutual fund matlab — bahut log milke paisa dete hain, aur ek expert fund manager usse stocks-bonds mein lagata hai. Aapko khud kuch choose nahi karna — sab manager dekhta hai.",
	},
	"expense ratio": {
		model.LangEnglish:  "Expense ratio is the annual fee charged by the fund for managing your money. If it's 1%, and you invest ₹10,000, ₹100/year goes as fees. Lower expense ratio = more money stays with you.",
		model.LangHindi:    "Expense ratio woh annual fee hai jo fund aapke paisa manage karne ke liye charge karta hai. Agar 1% hai aur aapne ₹10,000 invest kiye, toh ₹100 per year fees jaati hai. Kam expense ratio = zyada paisa aapke paas.",
		model.LangHinglish: "Expense ratio ek annual fee hai jo fund charge karta hai paisa manage karne ke liye. 1% ratio + ₹10,000 investment = ₹100/year fees. Jitna kam ratio, utna zyada paisa aapka.",
	},
	"aum": {
		model.LangEnglish:  "AUM (Assets Under Management) is the total money managed by a fund. A fund with ₹50,000 crore AUM means investors have put that much money in it. Higher AUM generally means more trust.",
		model.LangHindi:    "AUM (Assets Under Management) ka matlab hai fund ke paas total kitna paisa hai manage karne ke liye. Agar ₹50,000 crore AUM hai toh investors ne utna paisa lagaya hai. Zyada AUM matlab zyada bharosa.",
		model.LangHinglish: "AUM means total paisa jo ek fund manage kar raha hai. ₹50,000 crore AUM matlab itne investors ne paisa lagaya hai. Zyada AUM = zyada log trust karte hain.",
	},
	"cagr": {
		model.LangEnglish:  "CAGR (Compound Annual Growth Rate) shows the average yearly return of your investment. If CAGR is 12%, it means your money grew by ~12% every year on average.",
		model.LangHindi:    "CAGR (Compound Annual Growth Rate) aapke investment ka average yearly return batata hai. Agar CAGR 12% hai, toh aapka paisa har saal average mein ~12% badha.",
		model.LangHinglish: "CAGR matlab average yearly growth rate. Agar CAGR 12% hai toh har saal average mein aapka paisa ~12% badha. Investment compare karne ke liye bahut useful hai.",
	},
	"exit load": {
		model.LangEnglish:  "Exit load is a penalty fee if you withdraw your money too early. Usually 1% if you redeem within 1 year. After that, no charge. It discourages short-term withdrawals.",
		model.LangHindi:    "Exit load ek penalty fee hai agar aap apna paisa jaldi nikal lete hain. Usually 1% hota hai agar 1 saal ke andar nikalte hain. Uske baad koi charge nahi. Yeh jaldi paisa nikalne se rokta hai.",
		model.LangHinglish: "Exit load matlab jaldi paisa nikalne ki penalty. Usually 1% charge hota hai agar 1 saal ke andar nikalte ho. 1 saal ke baad — free, koi charge nahi.",
	},
	"elss": {
		model.LangEnglish:  "ELSS (Equity Linked Savings Scheme) is a type of mutual fund that saves tax under Section 80C. You can save up to ₹46,800 in taxes per year. But money is locked for 3 years.",
		model.LangHindi:    "ELSS (Equity Linked Savings Scheme) ek mutual fund hai jo Section 80C ke under tax bachata hai. Aap ₹46,800 tak tax bacha sakte hain per year. Lekin paisa 3 saal ke liye lock rehta hai.",
		model.LangHinglish: "ELSS ek tax-saving mutual fund hai. Section 80C ke under ₹46,800 tak tax bacha sakte ho. Bas ek catch — paisa 3 saal lock rehta hai. Tax + returns dono milte hain.",
	},
	"large cap": {
		model.LangEnglish:  "Large cap funds invest in big, well-established companies like Reliance, TCS, HDFC. They are safer but give moderate returns. Good for beginners and conservative investors.",
		model.LangHindi:    "Large cap funds badi aur established companies jaise Reliance, TCS, HDFC mein invest karte hain. Yeh safe hote hain lekin returns moderate milte hain. Beginners ke liye accha hai.",
		model.LangHinglish: "Large cap = badi companies mein invest. Reliance, TCS, HDFC jaise. Safe hota hai, returns moderate milte hain. Agar naye ho investing mein toh yahi se shuru karo.",
	},
	"small cap": {
		model.LangEnglish:  "Small cap funds invest in small companies with high growth potential. They can give very high returns but are also very risky. Suitable for long-term investors who can handle ups and downs.",
		model.LangHindi:    "Small cap funds chhoti companies mein invest karte hain jinme bahut growth ho sakti hai. Bahut zyada return de sakte hain lekin risk bhi bahut hai. Long-term investors ke liye suitable hai jo ups-downs handle kar sakein.",
		model.LangHinglish: "Small cap = chhoti companies mein paisa lagana. Risk zyada hai but returns bhi bahut zyada ho sakte hain. Long-term ke liye hi best hai — short-term mein bahut uthak-baithak hoti hai.",
	},
}
