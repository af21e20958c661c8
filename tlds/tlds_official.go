package tlds

// Official is a sorted list of public top-level domains (TLDs) and effective
// top-level domains (eTLDs) checked into the repository as a static snapshot
// rather than fetched at build time. It mirrors the shape of the dynamically
// fetched IANA/Public-Suffix-List output this package's generator produces
// (see gen/TLDs/main.go): ASCII entries sorted first, a handful of
// Unicode-form ccTLDs last, which callers (extractor.go, domain_extractor.go)
// rely on to split the slice into an ASCII half and a Unicode half.
//
// This is a curated subset of the full registry (over a thousand entries and
// growing), covering the generic TLDs, the common country-code TLDs, and the
// multi-label public suffixes (like "co.uk") that appear most often in logs
// and URLs, rather than an exhaustive mirror of the live IANA/PSL data.
var Official = []string{
	`academy`,
	`accountant`,
	`accountants`,
	`actor`,
	`ac.in`,
	`ac.jp`,
	`ac.nz`,
	`ac.uk`,
	`ad`,
	`ae`,
	`aero`,
	`af`,
	`ag`,
	`agency`,
	`ai`,
	`airforce`,
	`al`,
	`am`,
	`app`,
	`ar`,
	`army`,
	`art`,
	`as`,
	`asia`,
	`at`,
	`attorney`,
	`au`,
	`auction`,
	`audio`,
	`aw`,
	`az`,
	`ba`,
	`baby`,
	`band`,
	`bar`,
	`bargains`,
	`bayern`,
	`bb`,
	`bd`,
	`be`,
	`beer`,
	`berlin`,
	`best`,
	`bet`,
	`bf`,
	`bg`,
	`bh`,
	`bi`,
	`bike`,
	`bio`,
	`biz`,
	`bj`,
	`black`,
	`blog`,
	`blue`,
	`bn`,
	`bo`,
	`boston`,
	`boutique`,
	`br`,
	`bs`,
	`bt`,
	`build`,
	`builders`,
	`business`,
	`buzz`,
	`bw`,
	`by`,
	`bz`,
	`ca`,
	`cab`,
	`cafe`,
	`camera`,
	`camp`,
	`capital`,
	`car`,
	`cards`,
	`care`,
	`careers`,
	`cars`,
	`casa`,
	`cash`,
	`casino`,
	`cat`,
	`catering`,
	`cc`,
	`center`,
	`ceo`,
	`cf`,
	`ch`,
	`chat`,
	`cheap`,
	`church`,
	`ci`,
	`city`,
	`claims`,
	`cleaning`,
	`click`,
	`clinic`,
	`cloud`,
	`club`,
	`cm`,
	`cn`,
	`co`,
	`coach`,
	`codes`,
	`coffee`,
	`college`,
	`com`,
	`com.au`,
	`com.br`,
	`com.cn`,
	`com.mx`,
	`com.tr`,
	`community`,
	`company`,
	`computer`,
	`condos`,
	`construction`,
	`consulting`,
	`contractors`,
	`cooking`,
	`cool`,
	`co.in`,
	`co.jp`,
	`co.ke`,
	`co.kr`,
	`co.nz`,
	`co.th`,
	`co.uk`,
	`co.za`,
	`coupons`,
	`courses`,
	`cr`,
	`credit`,
	`cricket`,
	`cruises`,
	`cu`,
	`cv`,
	`cw`,
	`cy`,
	`cymru`,
	`cz`,
	`dance`,
	`date`,
	`dating`,
	`de`,
	`deals`,
	`degree`,
	`delivery`,
	`democrat`,
	`dental`,
	`dentist`,
	`design`,
	`dev`,
	`diamonds`,
	`digital`,
	`direct`,
	`directory`,
	`discount`,
	`dj`,
	`dk`,
	`dm`,
	`do`,
	`doctor`,
	`dog`,
	`domains`,
	`download`,
	`dz`,
	`earth`,
	`ec`,
	`eco`,
	`edu`,
	`edu.au`,
	`education`,
	`ee`,
	`eg`,
	`email`,
	`energy`,
	`engineer`,
	`engineering`,
	`enterprises`,
	`equipment`,
	`er`,
	`es`,
	`estate`,
	`et`,
	`eu`,
	`events`,
	`exchange`,
	`expert`,
	`exposed`,
	`express`,
	`fail`,
	`faith`,
	`family`,
	`fans`,
	`farm`,
	`fashion`,
	`fi`,
	`finance`,
	`financial`,
	`fish`,
	`fishing`,
	`fit`,
	`fitness`,
	`fj`,
	`fk`,
	`flights`,
	`florist`,
	`flowers`,
	`fm`,
	`fo`,
	`football`,
	`forsale`,
	`foundation`,
	`fr`,
	`fun`,
	`fund`,
	`furniture`,
	`futbol`,
	`fyi`,
	`ga`,
	`gallery`,
	`games`,
	`garden`,
	`gay`,
	`gb`,
	`gd`,
	`ge`,
	`gf`,
	`gg`,
	`gh`,
	`gi`,
	`gift`,
	`gifts`,
	`gives`,
	`gl`,
	`glass`,
	`global`,
	`gm`,
	`gmbh`,
	`gn`,
	`gold`,
	`golf`,
	`gov`,
	`gov.au`,
	`gov.in`,
	`gov.uk`,
	`gp`,
	`gq`,
	`gr`,
	`graphics`,
	`gratis`,
	`green`,
	`gripe`,
	`group`,
	`gs`,
	`gt`,
	`gu`,
	`guide`,
	`guitars`,
	`guru`,
	`gw`,
	`gy`,
	`hair`,
	`haus`,
	`healthcare`,
	`help`,
	`hk`,
	`hm`,
	`hn`,
	`hockey`,
	`holdings`,
	`holiday`,
	`horse`,
	`hospital`,
	`host`,
	`hosting`,
	`house`,
	`hr`,
	`ht`,
	`hu`,
	`icu`,
	`id`,
	`ie`,
	`il`,
	`im`,
	`immo`,
	`in`,
	`inc`,
	`industries`,
	`info`,
	`ink`,
	`institute`,
	`insurance`,
	`insure`,
	`international`,
	`investments`,
	`io`,
	`iq`,
	`ir`,
	`irish`,
	`is`,
	`it`,
	`je`,
	`jewelry`,
	`jm`,
	`jo`,
	`jobs`,
	`jp`,
	`juegos`,
	`kaufen`,
	`ke`,
	`kg`,
	`kh`,
	`ki`,
	`kim`,
	`kitchen`,
	`kn`,
	`kp`,
	`kr`,
	`kred`,
	`kw`,
	`ky`,
	`kz`,
	`la`,
	`land`,
	`law`,
	`lawyer`,
	`lb`,
	`lc`,
	`lease`,
	`legal`,
	`lgbt`,
	`li`,
	`life`,
	`lighting`,
	`limited`,
	`limo`,
	`link`,
	`live`,
	`lk`,
	`llc`,
	`loan`,
	`loans`,
	`lol`,
	`london`,
	`love`,
	`lr`,
	`ls`,
	`lt`,
	`ltd`,
	`ltda`,
	`lu`,
	`luxury`,
	`lv`,
	`ly`,
	`ma`,
	`maison`,
	`management`,
	`market`,
	`marketing`,
	`markets`,
	`mba`,
	`mc`,
	`md`,
	`me`,
	`media`,
	`meet`,
	`melbourne`,
	`memorial`,
	`menu`,
	`mg`,
	`miami`,
	`mil`,
	`mk`,
	`ml`,
	`mm`,
	`mn`,
	`mo`,
	`mobi`,
	`moda`,
	`moe`,
	`mom`,
	`money`,
	`mortgage`,
	`motorcycles`,
	`mov`,
	`movie`,
	`mp`,
	`mq`,
	`mr`,
	`ms`,
	`mt`,
	`mu`,
	`museum`,
	`mv`,
	`mw`,
	`mx`,
	`my`,
	`mz`,
	`na`,
	`name`,
	`navy`,
	`nc`,
	`ne`,
	`net`,
	`net.au`,
	`network`,
	`news`,
	`nf`,
	`ng`,
	`ngo`,
	`ni`,
	`ninja`,
	`nl`,
	`no`,
	`nom`,
	`np`,
	`nr`,
	`nu`,
	`nyc`,
	`nz`,
	`om`,
	`ong`,
	`onl`,
	`online`,
	`ooo`,
	`org`,
	`org.au`,
	`org.uk`,
	`org.za`,
	`organic`,
	`osaka`,
	`paris`,
	`partners`,
	`parts`,
	`party`,
	`pe`,
	`pet`,
	`pf`,
	`pg`,
	`ph`,
	`photo`,
	`photography`,
	`photos`,
	`pics`,
	`pictures`,
	`pink`,
	`pizza`,
	`pk`,
	`pl`,
	`place`,
	`plumbing`,
	`plus`,
	`pm`,
	`pn`,
	`poker`,
	`porn`,
	`post`,
	`pr`,
	`press`,
	`pro`,
	`productions`,
	`promo`,
	`properties`,
	`property`,
	`ps`,
	`pt`,
	`pub`,
	`pw`,
	`py`,
	`qa`,
	`qpon`,
	`quebec`,
	`racing`,
	`re`,
	`realty`,
	`recipes`,
	`red`,
	`rehab`,
	`reise`,
	`reisen`,
	`rent`,
	`rentals`,
	`repair`,
	`report`,
	`rest`,
	`restaurant`,
	`review`,
	`reviews`,
	`rich`,
	`rip`,
	`ro`,
	`rocks`,
	`rodeo`,
	`rs`,
	`rsvp`,
	`ru`,
	`run`,
	`rw`,
	`sa`,
	`sale`,
	`salon`,
	`sarl`,
	`sb`,
	`sc`,
	`school`,
	`schule`,
	`science`,
	`scot`,
	`sd`,
	`se`,
	`services`,
	`sexy`,
	`sg`,
	`sh`,
	`shoes`,
	`shop`,
	`shopping`,
	`show`,
	`si`,
	`singles`,
	`site`,
	`sk`,
	`ski`,
	`skin`,
	`sl`,
	`sm`,
	`sn`,
	`so`,
	`soccer`,
	`social`,
	`software`,
	`solar`,
	`solutions`,
	`soy`,
	`space`,
	`sr`,
	`ss`,
	`st`,
	`storage`,
	`store`,
	`stream`,
	`studio`,
	`study`,
	`style`,
	`su`,
	`supplies`,
	`supply`,
	`support`,
	`surf`,
	`surgery`,
	`sv`,
	`sx`,
	`sy`,
	`sydney`,
	`systems`,
	`sz`,
	`taipei`,
	`tattoo`,
	`tax`,
	`taxi`,
	`tc`,
	`td`,
	`team`,
	`tech`,
	`technology`,
	`tel`,
	`tennis`,
	`tf`,
	`tg`,
	`th`,
	`theater`,
	`tickets`,
	`tienda`,
	`tips`,
	`tires`,
	`tj`,
	`tk`,
	`tl`,
	`tm`,
	`tn`,
	`to`,
	`today`,
	`tokyo`,
	`tools`,
	`top`,
	`tours`,
	`town`,
	`toys`,
	`tr`,
	`trade`,
	`training`,
	`travel`,
	`tt`,
	`tube`,
	`tv`,
	`tw`,
	`tz`,
	`ua`,
	`ug`,
	`uk`,
	`university`,
	`uno`,
	`us`,
	`uy`,
	`uz`,
	`va`,
	`vacations`,
	`vc`,
	`ve`,
	`vegas`,
	`ventures`,
	`vet`,
	`vg`,
	`vi`,
	`viajes`,
	`video`,
	`villas`,
	`vip`,
	`vision`,
	`vlaanderen`,
	`vn`,
	`vodka`,
	`vote`,
	`voting`,
	`voto`,
	`voyage`,
	`vu`,
	`wales`,
	`watch`,
	`webcam`,
	`website`,
	`wedding`,
	`wf`,
	`wien`,
	`wiki`,
	`win`,
	`wine`,
	`work`,
	`works`,
	`world`,
	`ws`,
	`wtf`,
	`xyz`,
	`ye`,
	`yoga`,
	`yt`,
	`za`,
	`zm`,
	`zone`,
	`zw`,
	// Unicode-form ccTLDs, kept last so the ASCII/Unicode split in
	// extractor.go's and domain_extractor.go's CompileRegex loop (which
	// breaks on the first byte >= utf8.RuneSelf) lands after all the ASCII
	// entries above.
	`рф`,
	`бел`,
	`укр`,
	`中国`,
	`中國`,
	`香港`,
	`台湾`,
	`台灣`,
	`日本`,
	`한국`,
	`新加坡`,
	`भारत`,
	`みんな`,
	`世界`,
}
